package testutil

import (
	"context"

	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/repository"
)

// Fixture accounts, one per role, available in every MockContext database.
var (
	Admin = &entity.User{
		Base:  entity.Base{ID: "admin"},
		Email: "admin@example.com",
		Name:  "Admin",
		Role:  entity.RoleAdmin,
	}

	Temple1 = &entity.User{
		Base:    entity.Base{ID: "temple1"},
		Email:   "temple1@example.com",
		Name:    "Temple One",
		Role:    entity.RoleTemple,
		Address: "12 Temple Street",
	}

	DryingUnit1 = &entity.User{
		Base:  entity.Base{ID: "dryingunit1"},
		Email: "dryingunit1@example.com",
		Name:  "Drying Unit One",
		Role:  entity.RoleDryingUnit,
	}

	DryingUnit2 = &entity.User{
		Base:  entity.Base{ID: "dryingunit2"},
		Email: "dryingunit2@example.com",
		Name:  "Drying Unit Two",
		Role:  entity.RoleDryingUnit,
	}

	User1 = &entity.User{
		Base:    entity.Base{ID: "user1"},
		Email:   "user1@example.com",
		Name:    "User One",
		Role:    entity.RoleUser,
		Address: "34 River Road",
	}

	User2 = &entity.User{
		Base:  entity.Base{ID: "user2"},
		Email: "user2@example.com",
		Name:  "User Two",
		Role:  entity.RoleUser,
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	users := []*entity.User{Admin, Temple1, DryingUnit1, DryingUnit2, User1, User2}
	for _, u := range users {
		user := *u
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}
