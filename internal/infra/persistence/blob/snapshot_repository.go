// Package blob persists the device's client state as JSON documents in a
// gocloud.dev blob bucket. On a kiosk the bucket is a local directory
// (file:// URL); tests use mem://.
package blob

import (
	"context"
	"encoding/json"
	"log/slog"

	"crave/config"
	"crave/internal/domain/entity"
	"crave/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// bucket scheme
	_ "gocloud.dev/blob/memblob"  // register mem:// bucket scheme
	"gocloud.dev/gcerrors"
)

const (
	userKey = "user.json"
	cartKey = "cart.json"
)

type snapshotRepository struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// BucketParams holds dependencies for opening the snapshot bucket.
type BucketParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotRepository opens the bucket named by the snapshot store URL
// and closes it on shutdown.
func NewSnapshotRepository(params BucketParams) (repository.SnapshotRepository, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Snapshot.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot bucket %s", params.Config.Snapshot.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &snapshotRepository{bucket: bucket, logger: params.Logger}, nil
}

// userDocument is the serialized form of the user snapshot.
type userDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Coins     int64  `json:"coins"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// cartDocument is the serialized form of the cart.
type cartDocument struct {
	Items []cartLineDocument `json:"items"`
}

type cartLineDocument struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Variant    string `json:"variant"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

func (r *snapshotRepository) LoadUser(ctx context.Context) (*entity.User, error) {
	var doc userDocument
	if err := r.read(ctx, userKey, &doc); err != nil {
		return nil, err
	}

	return &entity.User{
		ID:    doc.ID,
		Name:  doc.Name,
		Email: doc.Email,
		Role:  entity.Role(doc.Role),
		Coins: doc.Coins,
	}, nil
}

func (r *snapshotRepository) SaveUser(ctx context.Context, user *entity.User) error {
	return r.write(ctx, userKey, userDocument{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
		Coins: user.Coins,
	})
}

func (r *snapshotRepository) DeleteUser(ctx context.Context) error {
	return r.delete(ctx, userKey)
}

func (r *snapshotRepository) LoadCart(ctx context.Context) (*entity.Cart, error) {
	var doc cartDocument
	if err := r.read(ctx, cartKey, &doc); err != nil {
		return nil, err
	}

	cart := &entity.Cart{}
	for _, line := range doc.Items {
		price, err := decimalFromString(line.UnitPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt cart snapshot line %s", line.MenuItemID)
		}
		cart.Items = append(cart.Items, entity.CartItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Variant:    line.Variant,
			UnitPrice:  price,
			Quantity:   line.Quantity,
		})
	}

	return cart, nil
}

func (r *snapshotRepository) SaveCart(ctx context.Context, cart *entity.Cart) error {
	doc := cartDocument{Items: make([]cartLineDocument, 0, len(cart.Items))}
	for _, line := range cart.Items {
		doc.Items = append(doc.Items, cartLineDocument{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Variant:    line.Variant,
			UnitPrice:  line.UnitPrice.String(),
			Quantity:   line.Quantity,
		})
	}

	return r.write(ctx, cartKey, doc)
}

func (r *snapshotRepository) DeleteCart(ctx context.Context) error {
	return r.delete(ctx, cartKey)
}

func (r *snapshotRepository) read(ctx context.Context, key string, out any) error {
	data, err := r.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrSnapshotNotFound
		}

		return errors.Wrapf(err, "failed to read snapshot %s", key)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode snapshot %s", key)
	}

	return nil
}

func (r *snapshotRepository) write(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "failed to encode snapshot %s", key)
	}
	if err := r.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}

	return nil
}

func (r *snapshotRepository) delete(ctx context.Context, key string) error {
	err := r.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete snapshot %s", key)
	}

	return nil
}

func decimalFromString(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(s)
}
