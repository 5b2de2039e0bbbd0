package service

import (
	"Showcase/internal/api/dto"
	"Showcase/internal/model"
	"Showcase/internal/repository"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库，单连接避免各连接看到不同的库
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserDetail{},
		&model.Portfolio{},
		&model.Rating{},
		&model.PortfolioMetric{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	email := nickname + "@test.local"
	password := "hashed"
	user := &model.User{
		Email:    &email,
		Password: &password,
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&model.UserDetail{
		UserID:   user.ID,
		Nickname: nickname,
	}).Error)
	return user
}

func seedUsers(t *testing.T, db *gorm.DB, prefix string, count int) []*model.User {
	t.Helper()

	users := make([]*model.User, count)
	for i := 0; i < count; i++ {
		users[i] = seedUser(t, db, prefix+strconv.Itoa(i))
	}
	return users
}

func newPortfolioService(db *gorm.DB) PortfolioService {
	return NewPortfolioService(repository.NewPortfolioRepository(db))
}

func newRatingService(db *gorm.DB) RatingService {
	return NewRatingService(
		repository.NewRatingRepository(db),
		repository.NewPortfolioRepository(db),
		repository.NewUserRepo(db),
	)
}

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepo(db))
}

func basePortfolioDTO(heroName string) *dto.PortfolioBaseDTO {
	return &dto.PortfolioBaseDTO{
		TemplateID: "classic",
		HeroName:   heroName,
		HeroTitle:  "Backend Engineer",
		AboutMe:    "写点什么",
		Skills:     []string{"Go", "MySQL"},
	}
}

func mustPortfolio(t *testing.T, db *gorm.DB, id uint64) *model.Portfolio {
	t.Helper()

	var portfolio model.Portfolio
	require.NoError(t, db.First(&portfolio, id).Error)
	return &portfolio
}
