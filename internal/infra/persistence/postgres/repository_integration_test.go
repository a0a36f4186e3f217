//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"foodies/internal/domain/entity"
	"foodies/internal/domain/repository"
	"foodies/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositorySuite struct {
	suite.Suite

	ctx       context.Context
	container *tcpostgres.PostgresContainer
	db        *gorm.DB

	users         repository.UserRepository
	relationships repository.RelationshipRepository
	recipes       repository.RecipeRepository
	catalog       repository.CatalogRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("foodies_test"),
		tcpostgres.WithUsername("foodies"),
		tcpostgres.WithPassword("foodies"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(Migrate(db))
	s.db = db

	s.users = NewUserRepository(db)
	s.relationships = NewRelationshipRepository(db)
	s.recipes = NewRecipeRepository(db)
	s.catalog = NewCatalogRepository(db)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE users, categories, areas, ingredients, recipes, recipe_ingredients, " +
			"user_follows, user_favorite_recipes, testimonials CASCADE",
	).Error)
}

func (s *RepositorySuite) createUser(name string) *entity.User {
	user := &entity.User{Name: name, Email: name + "@example.com", PasswordHash: "hash"}
	s.Require().NoError(s.users.Create(s.ctx, user))

	return user
}

type fixtureCatalog struct {
	dessert, beef    *model.CategoryModel
	british, italian *model.AreaModel
	sugar, garlic    *model.IngredientModel
}

func (s *RepositorySuite) seedCatalog() fixtureCatalog {
	f := fixtureCatalog{
		dessert: &model.CategoryModel{Name: "Dessert"},
		beef:    &model.CategoryModel{Name: "Beef"},
		british: &model.AreaModel{Name: "British"},
		italian: &model.AreaModel{Name: "Italian"},
		sugar:   &model.IngredientModel{Name: "Brown Sugar"},
		garlic:  &model.IngredientModel{Name: "Garlic"},
	}
	for _, row := range []any{f.dessert, f.beef, f.british, f.italian, f.sugar, f.garlic} {
		s.Require().NoError(s.db.Create(row).Error)
	}

	return f
}

func (s *RepositorySuite) createRecipe(owner *entity.User, title string, category *model.CategoryModel, area *model.AreaModel, ingredients ...*model.IngredientModel) *entity.Recipe {
	recipe := &entity.Recipe{
		Title:        title,
		Description:  title + " description",
		Instructions: "Cook it.",
		Time:         30,
		OwnerID:      owner.ID,
		CategoryID:   category.ID,
		AreaID:       area.ID,
	}
	for _, ingredient := range ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entity.RecipeIngredient{IngredientID: ingredient.ID, Measure: "1 cup"})
	}
	s.Require().NoError(s.recipes.Create(s.ctx, recipe))

	return recipe
}

func (s *RepositorySuite) TestUser_UniqueFields() {
	s.createUser("alice")

	err := s.users.Create(s.ctx, &entity.User{Name: "alice", Email: "other@example.com", PasswordHash: "hash"})
	s.ErrorIs(err, repository.ErrDuplicateName)

	err = s.users.Create(s.ctx, &entity.User{Name: "alice2", Email: "alice@example.com", PasswordHash: "hash"})
	s.ErrorIs(err, repository.ErrDuplicateEmail)

	matches, err := s.users.FindByNameOrEmail(s.ctx, "nobody", "alice@example.com")
	s.Require().NoError(err)
	s.Len(matches, 1)
}

func (s *RepositorySuite) TestUser_RefreshTokenLifecycle() {
	user := s.createUser("bob")

	s.Require().NoError(s.users.SetRefreshToken(s.ctx, user.ID, "digest"))
	found, err := s.users.FindByName(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal("digest", found.RefreshToken)

	s.Require().NoError(s.users.SetRefreshToken(s.ctx, user.ID, ""))
	found, err = s.users.FindByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Empty(found.RefreshToken)

	s.ErrorIs(s.users.SetRefreshToken(s.ctx, uuid.New(), "x"), repository.ErrUserNotFound)
	_, err = s.users.FindByName(s.ctx, "ghost")
	s.ErrorIs(err, repository.ErrUserNotFound)
}

func (s *RepositorySuite) TestFollowEdges() {
	alice := s.createUser("alice")
	bob := s.createUser("bob")
	carol := s.createUser("carol")

	s.Require().NoError(s.relationships.CreateFollow(s.ctx, &entity.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))
	s.Require().NoError(s.relationships.CreateFollow(s.ctx, &entity.Follow{FollowerID: alice.ID, FollowedID: carol.ID}))
	s.ErrorIs(s.relationships.CreateFollow(s.ctx, &entity.Follow{FollowerID: alice.ID, FollowedID: bob.ID}), repository.ErrDuplicateEdge)
	s.ErrorIs(s.relationships.CreateFollow(s.ctx, &entity.Follow{FollowerID: alice.ID, FollowedID: uuid.New()}), repository.ErrEdgeEndpointMissing)
	s.Error(s.relationships.CreateFollow(s.ctx, &entity.Follow{FollowerID: bob.ID, FollowedID: bob.ID}))

	following, err := s.relationships.FindFollowing(s.ctx, alice.ID, entity.NewPage(0, 0, 0))
	s.Require().NoError(err)
	s.Require().Len(following, 2)
	s.Equal("bob", following[0].Name)

	followers, err := s.relationships.FindFollowers(s.ctx, bob.ID, entity.NewPage(0, 0, 0))
	s.Require().NoError(err)
	s.Require().Len(followers, 1)
	s.Equal(alice.ID, followers[0].ID)

	count, err := s.relationships.CountFollowing(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.EqualValues(2, count)

	removed, err := s.relationships.DeleteFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.relationships.DeleteFollow(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.False(removed)

	exists, err := s.relationships.FollowExists(s.ctx, alice.ID, bob.ID)
	s.Require().NoError(err)
	s.False(exists)

	following, err = s.relationships.FindFollowing(s.ctx, alice.ID, entity.NewPage(0, 0, 0))
	s.Require().NoError(err)
	s.Require().Len(following, 1)
	s.Equal("carol", following[0].Name)
}

func (s *RepositorySuite) TestRecipeSearch() {
	f := s.seedCatalog()
	owner := s.createUser("chef")
	toffee := s.createRecipe(owner, "Sticky Toffee Pudding", f.dessert, f.british, f.sugar)
	s.createRecipe(owner, "Beef Lasagne", f.beef, f.italian, f.garlic)

	results, err := s.recipes.Search(s.ctx, entity.RecipeFilter{Category: "dessert"}, entity.NewPage(0, 0, 10))
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(toffee.ID, results[0].ID)
	s.Equal("Dessert", results[0].Category.Name)
	s.Require().Len(results[0].Ingredients, 1)
	s.Equal("Brown Sugar", results[0].Ingredients[0].Ingredient.Name)

	results, err = s.recipes.Search(s.ctx, entity.RecipeFilter{Ingredient: "SUGAR", Area: "ital"}, entity.NewPage(0, 0, 10))
	s.Require().NoError(err)
	s.Empty(results)

	results, err = s.recipes.Search(s.ctx, entity.RecipeFilter{Category: "%"}, entity.NewPage(0, 0, 10))
	s.Require().NoError(err)
	s.Empty(results)

	results, err = s.recipes.Search(s.ctx, entity.RecipeFilter{}, entity.NewPage(0, 0, 10))
	s.Require().NoError(err)
	s.Len(results, 2)
}

func (s *RepositorySuite) TestRecipePopularAndFavorites() {
	f := s.seedCatalog()
	owner := s.createUser("chef")
	fan := s.createUser("fan")
	first := s.createRecipe(owner, "First", f.dessert, f.british)
	second := s.createRecipe(owner, "Second", f.beef, f.italian)

	s.Require().NoError(s.relationships.CreateFavorite(s.ctx, &entity.Favorite{UserID: fan.ID, RecipeID: second.ID}))
	s.Require().NoError(s.relationships.CreateFavorite(s.ctx, &entity.Favorite{UserID: owner.ID, RecipeID: second.ID}))
	s.ErrorIs(s.relationships.CreateFavorite(s.ctx, &entity.Favorite{UserID: fan.ID, RecipeID: second.ID}), repository.ErrDuplicateEdge)
	s.ErrorIs(s.relationships.CreateFavorite(s.ctx, &entity.Favorite{UserID: fan.ID, RecipeID: uuid.New()}), repository.ErrEdgeEndpointMissing)

	popular, err := s.recipes.FindPopular(s.ctx, entity.NewPage(0, 0, 0))
	s.Require().NoError(err)
	s.Require().Len(popular, 2)
	s.Equal(second.ID, popular[0].ID)
	s.EqualValues(2, popular[0].FavoritesCount)
	s.Equal(first.ID, popular[1].ID)
	s.EqualValues(0, popular[1].FavoritesCount)

	favorites, err := s.relationships.FindFavoriteRecipes(s.ctx, fan.ID, entity.NewPage(0, 0, 0))
	s.Require().NoError(err)
	s.Require().Len(favorites, 1)
	s.Equal(second.ID, favorites[0].ID)

	found, err := s.recipes.FindByID(s.ctx, second.ID)
	s.Require().NoError(err)
	s.EqualValues(2, found.FavoritesCount)
	s.Equal("chef", found.Owner.Name)

	removed, err := s.recipes.Delete(s.ctx, second.ID)
	s.Require().NoError(err)
	s.True(removed)

	count, err := s.relationships.CountFavorites(s.ctx, fan.ID)
	s.Require().NoError(err)
	s.Zero(count)

	_, err = s.recipes.FindByID(s.ctx, second.ID)
	s.ErrorIs(err, repository.ErrRecipeNotFound)
}

func (s *RepositorySuite) TestRecipeCreate_MissingReference() {
	f := s.seedCatalog()
	owner := s.createUser("chef")

	err := s.recipes.Create(s.ctx, &entity.Recipe{
		Title:      "Broken",
		OwnerID:    owner.ID,
		CategoryID: uuid.New(),
		AreaID:     f.british.ID,
	})
	s.ErrorIs(err, repository.ErrRecipeReferenceMissing)
}

func (s *RepositorySuite) TestTransactionRollback() {
	tm := NewTransactionManager(s.db)

	err := tm.Execute(s.ctx, func(factory repository.RepositoryFactory) error {
		user := &entity.User{Name: "temp", Email: "temp@example.com", PasswordHash: "hash"}
		if err := factory.UserRepo().Create(s.ctx, user); err != nil {
			return err
		}

		return repository.ErrDuplicateEdge
	})
	require.ErrorIs(s.T(), err, repository.ErrDuplicateEdge)

	_, err = s.users.FindByName(s.ctx, "temp")
	s.ErrorIs(err, repository.ErrUserNotFound)
}
