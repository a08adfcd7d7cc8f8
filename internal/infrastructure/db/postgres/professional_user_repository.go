package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

// professionalUserRecord is the gorm row model for the professional_users table.
type professionalUserRecord struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	LastName     string
	DNI          string `gorm:"column:dni"`
	Province     string
	City         string
	Tel          string
	Link         string
	AboutMe      string
	Gender       string
	BirthDate    string
	AuthNumber   string
	Img          string
	CategoryID   int  `gorm:"index:idx_category_active;not null"`
	Active       bool `gorm:"index:idx_category_active;not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (professionalUserRecord) TableName() string { return "professional_users" }

func toRecord(u *domain.ProfessionalUser) professionalUserRecord {
	return professionalUserRecord{
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
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r professionalUserRecord) toDomain() *domain.ProfessionalUser {
	return &domain.ProfessionalUser{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		LastName:     r.LastName,
		DNI:          r.DNI,
		Province:     r.Province,
		City:         r.City,
		Tel:          r.Tel,
		Link:         r.Link,
		AboutMe:      r.AboutMe,
		Gender:       r.Gender,
		BirthDate:    r.BirthDate,
		AuthNumber:   r.AuthNumber,
		Img:          r.Img,
		CategoryID:   r.CategoryID,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

// ProfessionalUserRepository implements ports.ProfessionalUserRepository on PostgreSQL via gorm.
type ProfessionalUserRepository struct {
	db *gorm.DB
}

func NewProfessionalUserRepository(db *gorm.DB) *ProfessionalUserRepository {
	return &ProfessionalUserRepository{db: db}
}

// Migrate creates or updates the professional_users table.
func (r *ProfessionalUserRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&professionalUserRecord{})
}

func (r *ProfessionalUserRepository) GetAll(ctx context.Context) ([]*domain.ProfessionalUser, error) {
	return r.find(ctx, "active = ?", true)
}

func (r *ProfessionalUserRepository) GetByID(ctx context.Context, id string) (*domain.ProfessionalUser, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", id)
}

func (r *ProfessionalUserRepository) FindByCategory(ctx context.Context, categoryID int) ([]*domain.ProfessionalUser, error) {
	return r.find(ctx, "active = ? AND category_id = ?", true, categoryID)
}

func (r *ProfessionalUserRepository) FindByEmail(ctx context.Context, email string) (*domain.ProfessionalUser, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *ProfessionalUserRepository) ValidateEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Model(&professionalUserRecord{}).Where("email = ?", email).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("validate email: %w", err)
	}
	return n > 0, nil
}

func (r *ProfessionalUserRepository) Create(ctx context.Context, user *domain.ProfessionalUser) (*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := toRecord(user)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return rec.toDomain(), nil
}

// Edit overwrites the profile columns. Email, password and active flag are
// left untouched.
func (r *ProfessionalUserRepository) Edit(ctx context.Context, user *domain.ProfessionalUser) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&professionalUserRecord{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
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
		"updated_at":  user.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("edit user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&professionalUserRecord{})
	if res.Error != nil {
		return fmt.Errorf("remove user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) ChangeStateToFalse(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&professionalUserRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     false,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return fmt.Errorf("disable user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *ProfessionalUserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	err := r.db.WithContext(ctx).Model(&professionalUserRecord{}).Count(&n).Error
	return n, err
}

func (r *ProfessionalUserRepository) first(ctx context.Context, query string, args ...interface{}) (*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec professionalUserRecord
	if err := r.db.WithContext(ctx).Where(query, args...).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *ProfessionalUserRepository) find(ctx context.Context, query string, args ...interface{}) ([]*domain.ProfessionalUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var recs []professionalUserRecord
	if err := r.db.WithContext(ctx).Where(query, args...).Order("last_name, name").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.ProfessionalUser, len(recs))
	for i, rec := range recs {
		users[i] = rec.toDomain()
	}
	return users, nil
}
