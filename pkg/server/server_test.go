package server_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mattgaskey/brewblog-api/configs"
	"github.com/mattgaskey/brewblog-api/mocks"
	"github.com/mattgaskey/brewblog-api/pkg/auth"
	"github.com/mattgaskey/brewblog-api/pkg/server"
)

// ServerTestSuite serves requests through the real router and auth manager in
// test mode, with the store mocked out.
type ServerTestSuite struct {
	suite.Suite
	store        *mocks.Store
	router       *gin.Engine
	privateKey   *rsa.PrivateKey
	observedLogs *observer.ObservedLogs
}

func (suite *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	suite.Require().NoError(err)
	suite.privateKey = privateKey

	keyFile := filepath.Join(suite.T().TempDir(), "public_key.pem")
	publicBytes, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	suite.Require().NoError(err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicBytes})
	suite.Require().NoError(os.WriteFile(keyFile, pemBytes, 0o600))

	conf := &configs.Config{
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

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	observedLogger := zap.New(observedZapCore)

	suite.store = mocks.NewStore(suite.T())
	authManager := auth.NewManager(conf, keys, observedLogger)
	suite.router = server.New(suite.store, authManager, observedLogger).Router()
}

func (suite *ServerTestSuite) bearerToken(permissions ...interface{}) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":         "https://brewblog.example.auth0.com/",
		"sub":         "auth0|tester",
		"aud":         "brewblog",
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(time.Hour).Unix(),
		"permissions": permissions,
	})
	token.Header["kid"] = "test-key"

	signed, err := token.SignedString(suite.privateKey)
	suite.Require().NoError(err)

	return "Bearer " + signed
}

// bearerTokenWithoutPermissions signs an otherwise valid token whose claim
// set has no permissions field at all.
func (suite *ServerTestSuite) bearerTokenWithoutPermissions() string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss": "https://brewblog.example.auth0.com/",
		"sub": "auth0|tester",
		"aud": "brewblog",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = "test-key"

	signed, err := token.SignedString(suite.privateKey)
	suite.Require().NoError(err)

	return "Bearer " + signed
}

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (suite *ServerTestSuite) request(method, path string, body interface{}, header string) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")

	if header != "" {
		request.Header.Set("Authorization", header)
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *ServerTestSuite) decodeBody(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}

	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}
