package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/domain"
	"github.com/hamza-bely/4hybd/internal/repository/memory"
	"github.com/hamza-bely/4hybd/internal/service"
)

func seedUser(t *testing.T, users *memory.UserRepo, name, email string) *domain.User {
	t.Helper()
	user := &domain.User{Name: name, Email: email, PasswordHash: "x", Role: domain.RoleUser}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func identityOf(user *domain.User) *auth.Identity {
	return &auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
}

func strPtr(s string) *string { return &s }

func TestUserUpdate_OwnProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepo()
	svc := service.NewUserService(users)
	alice := seedUser(t, users, "Alice", "alice@x.com")

	updated, err := svc.Update(ctx, identityOf(alice), alice.ID, service.UserUpdateInput{
		Name: strPtr("Alice B"),
	})
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)
	require.Equal(t, "alice@x.com", updated.Email)
}

func TestUserUpdate_OtherProfileForbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepo()
	svc := service.NewUserService(users)
	alice := seedUser(t, users, "Alice", "alice@x.com")
	bob := seedUser(t, users, "Bob", "bob@x.com")

	_, err := svc.Update(ctx, identityOf(alice), bob.ID, service.UserUpdateInput{
		Name: strPtr("Hacked"),
	})
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	unchanged, err := users.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, "Bob", unchanged.Name)
}

func TestUserUpdate_EmailChangeChecksUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepo()
	svc := service.NewUserService(users)
	alice := seedUser(t, users, "Alice", "alice@x.com")
	seedUser(t, users, "Bob", "bob@x.com")

	_, err := svc.Update(ctx, identityOf(alice), alice.ID, service.UserUpdateInput{
		Email: strPtr("bob@x.com"),
	})
	require.Equal(t, "DUPLICATE_EMAIL", errCode(t, err))

	updated, err := svc.Update(ctx, identityOf(alice), alice.ID, service.UserUpdateInput{
		Email: strPtr("Alice.New@X.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "alice.new@x.com", updated.Email)
}

func TestUserDelete_Ownership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepo()
	svc := service.NewUserService(users)
	alice := seedUser(t, users, "Alice", "alice@x.com")
	bob := seedUser(t, users, "Bob", "bob@x.com")

	err := svc.Delete(ctx, identityOf(alice), bob.ID)
	require.Equal(t, "FORBIDDEN", errCode(t, err))

	require.NoError(t, svc.Delete(ctx, identityOf(alice), alice.ID))

	_, err = svc.Get(ctx, alice.ID)
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestUserGet_NotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewUserService(memory.NewUserRepo())
	_, err := svc.Get(context.Background(), "missing")
	require.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestUserList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory.NewUserRepo()
	svc := service.NewUserService(users)
	seedUser(t, users, "Alice", "alice@x.com")
	seedUser(t, users, "Bob", "bob@x.com")

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}
