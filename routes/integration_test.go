//go:build integration
// +build integration

package routes_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blogly/config"
	"blogly/models"
	"blogly/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type IntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	router    *gin.Engine
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("blogly_test"),
		postgres.WithUsername("blogly"),
		postgres.WithPassword("blogly"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	suite.Require().NoError(err, "Failed to start PostgreSQL container")
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	suite.Require().NoError(err)

	db, err := config.InitDB(config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		Host:     host,
		Port:     port.Port(),
		User:     "blogly",
		Password: "blogly",
		Name:     "blogly_test",
		SSLMode:  "disable",
		LogLevel: "silent",
	})
	suite.Require().NoError(err, "Failed to connect to test database")
	suite.db = db

	gin.SetMode(gin.TestMode)
	router, err := routes.Setup(db, config.Config{
		SecretKey:        []byte("test-secret"),
		FlashTTL:         time.Minute,
		RecentPostsLimit: 5,
	})
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *IntegrationTestSuite) TearDownSuite() {
	if suite.container == nil {
		return
	}
	if err := suite.container.Terminate(context.Background()); err != nil {
		suite.T().Logf("Failed to terminate container: %v", err)
	}
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("TRUNCATE TABLE posts_tags, posts, tags, users RESTART IDENTITY CASCADE")
}

func (suite *IntegrationTestSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) TestUserPostTagLifecycle() {
	w := suite.postForm("/users/new", url.Values{"first_name": {"Harry"}, "last_name": {"Potter"}})
	suite.Equal(http.StatusSeeOther, w.Code)

	var user models.User
	suite.Require().NoError(suite.db.First(&user).Error)

	w = suite.postForm("/tags/new", url.Values{"name": {"magic"}})
	suite.Equal(http.StatusSeeOther, w.Code)

	var tag models.Tag
	suite.Require().NoError(suite.db.First(&tag).Error)

	w = suite.postForm(fmt.Sprintf("/users/%d/posts/new", user.ID), url.Values{
		"title":   {"Flying"},
		"content": {"Broomsticks"},
		"tags":    {fmt.Sprint(tag.ID)},
	})
	suite.Equal(http.StatusSeeOther, w.Code)

	var links int64
	suite.db.Model(&models.PostTag{}).Count(&links)
	suite.Equal(int64(1), links)

	w = suite.postForm(fmt.Sprintf("/users/%d/delete", user.ID), url.Values{})
	suite.Equal(http.StatusSeeOther, w.Code)

	var posts int64
	suite.db.Model(&models.Post{}).Count(&posts)
	suite.db.Model(&models.PostTag{}).Count(&links)
	suite.Zero(posts)
	suite.Zero(links)
}

func (suite *IntegrationTestSuite) TestDuplicateTagRejected() {
	suite.Equal(http.StatusSeeOther, suite.postForm("/tags/new", url.Values{"name": {"fun"}}).Code)
	suite.Equal(http.StatusInternalServerError, suite.postForm("/tags/new", url.Values{"name": {"fun"}}).Code)

	var count int64
	suite.db.Model(&models.Tag{}).Count(&count)
	suite.Equal(int64(1), count)
}
