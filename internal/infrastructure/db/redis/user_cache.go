package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manodeobra/professionals-api/internal/core/domain"
)

const (
	defaultUserTTL = 10 * time.Minute
	// guardTTL must outlive a repository read, so a fill that started
	// before an invalidation lands while the guard is still up.
	guardTTL = 15 * time.Second
)

// setUnlessGuarded writes KEYS[1] unless the invalidation guard KEYS[2] exists.
var setUnlessGuarded = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// UserCache caches professional users by ID.
// Key format: professional_user:<id>, guard: professional_user:<id>:invalidated
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultUserTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// cachedUser is the stored shape. The password hash is deliberately absent.
type cachedUser struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	LastName   string    `json:"last_name"`
	DNI        string    `json:"dni"`
	Province   string    `json:"province"`
	City       string    `json:"city"`
	Tel        string    `json:"tel"`
	Link       string    `json:"link"`
	AboutMe    string    `json:"about_me"`
	Gender     string    `json:"gender"`
	BirthDate  string    `json:"birth_date"`
	AuthNumber string    `json:"auth_number"`
	Img        string    `json:"img"`
	CategoryID int       `json:"category_id"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Get returns the cached user. A miss is (nil, false, nil).
func (c *UserCache) Get(ctx context.Context, id string) (*domain.ProfessionalUser, bool, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("user cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		return nil, false, fmt.Errorf("user cache decode: %w", err)
	}
	return cu.toDomain(), true, nil
}

// Set stores user for the configured TTL. It is a no-op while the entry's
// invalidation guard is live, so a read that raced a write cannot put the
// old state back.
func (c *UserCache) Set(ctx context.Context, user *domain.ProfessionalUser) error {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	keys := []string{key(user.ID), guardKey(user.ID)}
	if err := setUnlessGuarded.Run(ctx, c.client, keys, raw, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("user cache set: %w", err)
	}
	return nil
}

// Invalidate drops the entry for id and raises its guard. Missing keys are
// not an error.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key(id))
		pipe.Set(ctx, guardKey(id), 1, guardTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("user cache invalidate: %w", err)
	}
	return nil
}

func key(id string) string {
	return "professional_user:" + id
}

func guardKey(id string) string {
	return key(id) + ":invalidated"
}

func fromDomain(u *domain.ProfessionalUser) cachedUser {
	return cachedUser{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		LastName:   u.LastName,
		DNI:        u.DNI,
		Province:   u.Province,
		City:       u.City,
		Tel:        u.Tel,
		Link:       u.Link,
		AboutMe:    u.AboutMe,
		Gender:     u.Gender,
		BirthDate:  u.BirthDate,
		AuthNumber: u.AuthNumber,
		Img:        u.Img,
		CategoryID: u.CategoryID,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (cu cachedUser) toDomain() *domain.ProfessionalUser {
	return &domain.ProfessionalUser{
		ID:         cu.ID,
		Email:      cu.Email,
		Name:       cu.Name,
		LastName:   cu.LastName,
		DNI:        cu.DNI,
		Province:   cu.Province,
		City:       cu.City,
		Tel:        cu.Tel,
		Link:       cu.Link,
		AboutMe:    cu.AboutMe,
		Gender:     cu.Gender,
		BirthDate:  cu.BirthDate,
		AuthNumber: cu.AuthNumber,
		Img:        cu.Img,
		CategoryID: cu.CategoryID,
		Active:     cu.Active,
		CreatedAt:  cu.CreatedAt,
		UpdatedAt:  cu.UpdatedAt,
	}
}
