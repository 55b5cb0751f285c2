package client

import (
	"context"
	"errors"
	"time"

	"lendbook/internal/domain/client"
	"lendbook/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo client.Repository }

func NewUsecase(r client.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterClientInput struct {
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	ReferredBy string `json:"referred_by"`
}

type ClientDTO struct {
	ClientID     string    `json:"client_id"`
	Name         string    `json:"name"`
	NationalID   string    `json:"national_id"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	ReferredBy   string    `json:"referred_by,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

func toDTO(c *client.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:     c.ClientID,
		Name:         c.Name,
		NationalID:   c.NationalID,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		ReferredBy:   c.ReferredBy,
		RegisteredAt: c.RegisteredAt,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterClientInput) (*ClientDTO, error) {
	if in.Name == "" || in.NationalID == "" || in.Phone == "" {
		return nil, errors.New("name, national id and phone are required")
	}

	c := &client.Client{
		ClientID:     id.NewID32(),
		Name:         in.Name,
		NationalID:   in.NationalID,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		ReferredBy:   in.ReferredBy,
		RegisteredAt: time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]*ClientDTO, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ClientDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toDTO(c))
	}
	return out, nil
}
