package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/crm-ventas/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "crm-ventas-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUserID, "ana@ejemplo.com", "Ana", "García", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "ana@ejemplo.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "García", claims.Surname)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUserID, "ana@ejemplo.com", "Ana", "García", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, testUserID, "ana@ejemplo.com", "Ana", "García", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, testUserID, "ana@ejemplo.com", "Ana", "García", time.Hour)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "cualquier.token.aqui")
	assert.Error(t, err)
}
