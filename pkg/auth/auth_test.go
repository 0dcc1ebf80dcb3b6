package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/mattgaskey/brewblog-api/configs"
	"github.com/mattgaskey/brewblog-api/pkg/auth"
)

type missingKeyProvider struct{}

func (missingKeyProvider) ResolveKey(_ context.Context, _ string) (*rsa.PublicKey, error) {
	return nil, auth.ErrKeyNotFound
}

type AuthTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	conf       *configs.Config
	manager    *auth.Manager
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupTest() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	suite.Require().NoError(err)
	suite.privateKey = privateKey

	keyFile := filepath.Join(suite.T().TempDir(), "public_key.pem")
	publicBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	suite.Require().NoError(err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicBytes})
	suite.Require().NoError(os.WriteFile(keyFile, pemBytes, 0o600))

	suite.conf = &configs.Config{
		Auth: configs.Auth{
			Domain:            "brewblog.example.auth0.com",
			Audience:          "brewblog",
			Algorithms:        []string{"RS256"},
			TestMode:          true,
			TestPublicKeyFile: keyFile,
		},
	}

	keys, err := auth.NewStaticKeyProvider(keyFile)
	suite.Require().NoError(err)

	suite.manager = auth.NewManager(suite.conf, keys, zaptest.NewLogger(suite.T()))
}

func (suite *AuthTestSuite) signToken(claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = "test-key"

	signed, err := token.SignedString(suite.privateKey)
	suite.Require().NoError(err)

	return signed
}

func (suite *AuthTestSuite) validClaims(permissions ...interface{}) jwt.MapClaims {
	return jwt.MapClaims{
		"iss":         "https://brewblog.example.auth0.com/",
		"sub":         "auth0|user",
		"aud":         "brewblog",
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": permissions,
	}
}

func (suite *AuthTestSuite) TestExtractToken_MissingHeader() {
	header := http.Header{}

	token, authErr := suite.manager.ExtractToken(header)
	suite.Empty(token)
	suite.Require().NotNil(authErr)
	suite.Equal("authorization_header_missing", authErr.Code)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestExtractToken_WrongScheme() {
	header := http.Header{}
	header.Set("Authorization", "Basic abc123")

	_, authErr := suite.manager.ExtractToken(header)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal(`Authorization header must start with "Bearer".`, authErr.Description)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestExtractToken_MissingToken() {
	header := http.Header{}
	header.Set("Authorization", "Bearer")

	_, authErr := suite.manager.ExtractToken(header)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal("Token not found.", authErr.Description)
}

func (suite *AuthTestSuite) TestExtractToken_TooManyParts() {
	header := http.Header{}
	header.Set("Authorization", "Bearer abc def")

	_, authErr := suite.manager.ExtractToken(header)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal("Authorization header must be bearer token.", authErr.Description)
}

func (suite *AuthTestSuite) TestExtractToken_SchemeIsCaseInsensitive() {
	header := http.Header{}
	header.Set("Authorization", "bearer sometoken")

	token, authErr := suite.manager.ExtractToken(header)
	suite.Nil(authErr)
	suite.Equal("sometoken", token)
}

func (suite *AuthTestSuite) TestVerify_ValidToken() {
	signed := suite.signToken(suite.validClaims("get:breweries"))

	claims, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().Nil(authErr)
	suite.Equal("auth0|user", claims["sub"])
}

func (suite *AuthTestSuite) TestVerify_ExpiredToken() {
	claims := suite.validClaims("get:breweries")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	signed := suite.signToken(claims)

	_, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("token_expired", authErr.Code)
	suite.Equal("Token is expired.", authErr.Description)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestVerify_UntrustedKey() {
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	suite.Require().NoError(err)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, suite.validClaims())
	token.Header["kid"] = "test-key"
	signed, err := token.SignedString(otherKey)
	suite.Require().NoError(err)

	_, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestVerify_ProductionModeRejectsWrongAudience() {
	suite.conf.Auth.TestMode = false

	claims := suite.validClaims("get:breweries")
	claims["aud"] = "some-other-api"
	signed := suite.signToken(claims)

	_, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_claims", authErr.Code)
	suite.Equal("Incorrect claims. Please, check the audience and issuer.", authErr.Description)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestVerify_ProductionModeRejectsWrongIssuer() {
	suite.conf.Auth.TestMode = false

	claims := suite.validClaims("get:breweries")
	claims["iss"] = "https://someone-else.example/"
	signed := suite.signToken(claims)

	_, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_claims", authErr.Code)
}

func (suite *AuthTestSuite) TestVerify_MissingKeyID() {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, suite.validClaims())

	signed, err := token.SignedString(suite.privateKey)
	suite.Require().NoError(err)

	_, authErr := suite.manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal("Authorization malformed.", authErr.Description)
	suite.Equal(http.StatusUnauthorized, authErr.Status)
}

func (suite *AuthTestSuite) TestVerify_KeyNotFoundIsBadRequest() {
	manager := auth.NewManager(suite.conf, missingKeyProvider{}, zaptest.NewLogger(suite.T()))
	signed := suite.signToken(suite.validClaims())

	_, authErr := manager.Verify(context.Background(), signed)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_header", authErr.Code)
	suite.Equal("Unable to find the appropriate key.", authErr.Description)
	suite.Equal(http.StatusBadRequest, authErr.Status)
}

func (suite *AuthTestSuite) TestCheckPermissions_MissingPermissionsClaim() {
	claims := jwt.MapClaims{"sub": "auth0|user"}

	authErr := auth.CheckPermissions("get:breweries", claims)
	suite.Require().NotNil(authErr)
	suite.Equal("invalid_claims", authErr.Code)
	suite.Equal("Permissions not included in JWT.", authErr.Description)
	suite.Equal(http.StatusBadRequest, authErr.Status)
}

func (suite *AuthTestSuite) TestCheckPermissions_PermissionNotGranted() {
	claims := jwt.MapClaims{"permissions": []interface{}{"get:breweries"}}

	authErr := auth.CheckPermissions("delete:beers", claims)
	suite.Require().NotNil(authErr)
	suite.Equal("unauthorized", authErr.Code)
	suite.Equal("Permission not found.", authErr.Description)
	suite.Equal(http.StatusForbidden, authErr.Status)
}

func (suite *AuthTestSuite) TestCheckPermissions_PermissionGranted() {
	claims := jwt.MapClaims{"permissions": []interface{}{"get:breweries", "delete:beers"}}

	suite.Nil(auth.CheckPermissions("delete:beers", claims))
}

func (suite *AuthTestSuite) TestRequirePermission_PassesClaimsToHandler() {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded", suite.manager.RequirePermission("get:breweries"), func(c *gin.Context) {
		_, found := c.Get(auth.ClaimsKey)
		suite.True(found)
		c.Status(http.StatusNoContent)
	})

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	request.Header.Set("Authorization", "Bearer "+suite.signToken(suite.validClaims("get:breweries")))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *AuthTestSuite) TestRequirePermission_RendersStructuredError() {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/guarded", suite.manager.RequirePermission("get:breweries"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	request := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.JSONEq(`{"code": "authorization_header_missing", "description": "Authorization header is expected."}`, recorder.Body.String())
}
