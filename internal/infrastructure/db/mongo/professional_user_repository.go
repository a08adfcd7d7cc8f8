package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

const collectionProfessionalUsers = "professional_users"

// ProfessionalUserRepository implements ports.ProfessionalUserRepository using MongoDB.
type ProfessionalUserRepository struct {
	col *mongo.Collection
}

func NewProfessionalUserRepository(db *mongo.Database) *ProfessionalUserRepository {
	return &ProfessionalUserRepository{col: db.Collection(collectionProfessionalUsers)}
}

type professionalUserDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Name         string    `bson:"name"`
	LastName     string    `bson:"last_name"`
	DNI          string    `bson:"dni"`
	Province     string    `bson:"province"`
	City         string    `bson:"city"`
	Tel          string    `bson:"tel"`
	Link         string    `bson:"link"`
	AboutMe      string    `bson:"about_me"`
	Gender       string    `bson:"gender"`
	BirthDate    string    `bson:"birth_date"`
	AuthNumber   string    `bson:"auth_number"`
	Img          string    `bson:"img"`
	CategoryID   int       `bson:"category_id"`
	Active       bool      `bson:"active"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toDoc(u *domain.ProfessionalUser) professionalUserDoc {
	return professionalUserDoc{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		LastName:     u.LastName,
		DNI:          u.DNI,
		Province:     u.Province,
		City:         u.City,
		Tel:          u.Tel,
		Link:         u.Link,
		AboutMe:      u.AboutMe,
		Gender:       u.Gender,
		BirthDate:    u.BirthDate,
		AuthNumber:   u.AuthNumber,
		Img:          u.Img,
		CategoryID:   u.CategoryID,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (d professionalUserDoc) toDomain() *domain.ProfessionalUser {
	return &domain.ProfessionalUser{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		LastName:     d.LastName,
		DNI:          d.DNI,
		Province:     d.Province,
		City:         d.City,
		Tel:          d.Tel,
		Link:         d.Link,
		AboutMe:      d.AboutMe,
		Gender:       d.Gender,
		BirthDate:    d.BirthDate,
		AuthNumber:   d.AuthNumber,
		Img:          d.Img,
		CategoryID:   d.CategoryID,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// GetAll returns all active users ordered by last name.
func (r *ProfessionalUserRepository) GetAll(ctx context.Context) ([]*domain.ProfessionalUser, error) {
	return r.find(ctx, bson.M{"active": true})
}

// GetByID retrieves a user by ID, including disabled ones.
func (r *ProfessionalUserRepository) GetByID(ctx context.Context, id string) (*domain.ProfessionalUser, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProfessionalUserRepository) FindByCategory(ctx context.Context, categoryID int) ([]*domain.ProfessionalUser, error) {
	return r.find(ctx, bson.M{"active": true, "category_id": categoryID})
}

func (r *ProfessionalUserRepository) FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *ProfessionalUserRepository) ValidateEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("validate email: %w", err)
	}
	return n > 0, nil
}

// Create inserts a new user document. The unique email index turns
// duplicates into domain.ErrUserExists.
func (r *ProfessionalUserRepository) Create(ctx context.Context, user *domain.ProfessionalUser) (*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	if _, err := r.col.InsertOne(ctx, toDoc(&created)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// Edit overwrites the profile attributes. Email, password and active flag
// are left untouched.
func (r *ProfessionalUserRepository) Edit(ctx context.Context, user *domain.ProfessionalUser) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        user.Name,
		"last_name":   user.LastName,
		"dni":         user.DNI,
		"province":    user.Province,
		"city":        user.City,
		"tel":         user.Tel,
		"link":        user.Link,
		"about_me":    user.AboutMe,
		"gender":      user.Gender,
		"birth_date":  user.BirthDate,
		"auth_number": user.AuthNumber,
		"img":         user.Img,
		"category_id": user.CategoryID,
		"updated_at":  user.UpdatedAt.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return fmt.Errorf("edit user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) ChangeStateToFalse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("disable user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates necessary indexes on the professional_users collection.
func (r *ProfessionalUserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "active", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProfessionalUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc professionalUserDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProfessionalUserRepository) find(ctx context.Context, filter bson.M) ([]*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_name", Value: 1}, {Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var docs []professionalUserDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*domain.ProfessionalUser, len(docs))
	for i, d := range docs {
		users[i] = d.toDomain()
	}
	return users, nil
}
