package graphql_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	gqlapi "github.com/tu-usuario/crm-ventas/internal/interfaces/graphql"
)

// fakeUserRepo repositorio de usuarios en memoria para tests.
type fakeUserRepo struct {
	users map[entity.ID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[entity.ID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id entity.ID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	authUC := auth.NewUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret: "test-secret", ExpHours: 24, Issuer: "crm-ventas-test",
	})
	schema, err := gqlapi.NewSchema(&gqlapi.Resolver{Auth: authUC})
	require.NoError(t, err)
	return schema
}

func execute(schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

func TestSchema_RegistroYAutenticacion(t *testing.T) {
	schema := newTestSchema(t)
	ctx := context.Background()

	result := execute(schema, ctx, `
		mutation {
			registerUser(input: {name: "Ana", surname: "García", email: "ana@ejemplo.com", password: "secreto123"}) {
				id
				name
				email
			}
		}
	`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	user := data["registerUser"].(map[string]interface{})
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana@ejemplo.com", user["email"])

	result = execute(schema, ctx, `
		mutation {
			authenticateUser(input: {email: "ana@ejemplo.com", password: "secreto123"}) {
				token
			}
		}
	`)
	require.Empty(t, result.Errors)

	data = result.Data.(map[string]interface{})
	token := data["authenticateUser"].(map[string]interface{})
	assert.NotEmpty(t, token["token"])
}

func TestSchema_CredencialesInvalidas_DevuelveError(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, context.Background(), `
		mutation {
			authenticateUser(input: {email: "nadie@ejemplo.com", password: "x"}) {
				token
			}
		}
	`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, domain.ErrInvalidCredentials.Error())
}

func TestSchema_GetUser_RespondeLaIdentidadDelToken(t *testing.T) {
	schema := newTestSchema(t)

	ctx := gqlapi.WithCaller(context.Background(), entity.Caller{
		ID: "user-1", Email: "ana@ejemplo.com", Name: "Ana", Surname: "García",
	})
	result := execute(schema, ctx, `{ getUser { id name surname email } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	user := data["getUser"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "García", user["surname"])
	assert.Equal(t, "ana@ejemplo.com", user["email"])
}

func TestSchema_GetUser_Anonimo_DevuelveError(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, context.Background(), `{ getUser { id } }`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, domain.ErrInvalidToken.Error())
}
