package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	apperrors "github.com/franciscosanchezn/pizza-restaurants-api/internal/errors"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ServiceTestSuite struct {
	suite.Suite
	db *gorm.DB

	karen  *models.Restaurant
	sanjay *models.Restaurant
	emma   *models.Pizza
	geri   *models.Pizza
}

func (s *ServiceTestSuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())

	s.karen = testutil.CreateRestaurant(s.T(), s.db, "Karen's Pizza Shack", "address1")
	s.sanjay = testutil.CreateRestaurant(s.T(), s.db, "Sanjay's Pizza", "address2")
	s.emma = testutil.CreatePizza(s.T(), s.db, "Emma", "Dough, Tomato Sauce, Cheese")
	s.geri = testutil.CreatePizza(s.T(), s.db, "Geri", "Dough, Tomato Sauce, Cheese, Pepperoni")

	testutil.CreateRestaurantPizza(s.T(), s.db, 1, s.emma, s.karen)
	testutil.CreateRestaurantPizza(s.T(), s.db, 4, s.geri, s.karen)
	testutil.CreateRestaurantPizza(s.T(), s.db, 7, s.emma, s.sanjay)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestGetAllRestaurantsOrdered() {
	restaurants, err := NewRestaurantService(s.db).GetAllRestaurants()

	s.Require().NoError(err)
	s.Require().Len(restaurants, 2)
	s.Equal(s.karen.ID, restaurants[0].ID)
	s.Equal(s.sanjay.ID, restaurants[1].ID)
	s.Empty(restaurants[0].RestaurantPizzas)
}

func (s *ServiceTestSuite) TestGetRestaurantByIDPreloadsPizzas() {
	restaurant, err := NewRestaurantService(s.db).GetRestaurantByID(s.karen.ID)

	s.Require().NoError(err)
	s.Require().Len(restaurant.RestaurantPizzas, 2)
	for _, rp := range restaurant.RestaurantPizzas {
		s.Require().NotNil(rp.Pizza)
		s.Equal(rp.PizzaID, rp.Pizza.ID)
	}
}

func (s *ServiceTestSuite) TestGetRestaurantByIDNotFound() {
	_, err := NewRestaurantService(s.db).GetRestaurantByID(999)

	s.True(apperrors.IsNotFound(err))
	s.ErrorIs(err, apperrors.ErrRestaurantNotFound)
}

func (s *ServiceTestSuite) TestDeleteRestaurantCascades() {
	service := NewRestaurantService(s.db)

	s.Require().NoError(service.DeleteRestaurant(s.karen.ID))

	s.EqualValues(0, testutil.CountRestaurantPizzas(s.T(), s.db, s.karen.ID))
	s.EqualValues(1, testutil.CountRestaurantPizzas(s.T(), s.db, s.sanjay.ID))
	_, err := service.GetRestaurantByID(s.karen.ID)
	s.True(apperrors.IsNotFound(err))

	// Pizzas survive the restaurant
	_, err = NewPizzaService(s.db).GetPizzaByID(s.geri.ID)
	s.NoError(err)
}

func (s *ServiceTestSuite) TestDeleteRestaurantNotFound() {
	err := NewRestaurantService(s.db).DeleteRestaurant(999)

	s.ErrorIs(err, apperrors.ErrRestaurantNotFound)
	s.EqualValues(3, testutil.CountRestaurantPizzas(s.T(), s.db))
}

func (s *ServiceTestSuite) TestGetPizzaByIDPreloadsRestaurants() {
	pizza, err := NewPizzaService(s.db).GetPizzaByID(s.emma.ID)

	s.Require().NoError(err)
	s.Require().Len(pizza.RestaurantPizzas, 2)
	for _, rp := range pizza.RestaurantPizzas {
		s.Require().NotNil(rp.Restaurant)
		s.Equal(rp.RestaurantID, rp.Restaurant.ID)
	}

	_, err = NewPizzaService(s.db).GetPizzaByID(999)
	s.ErrorIs(err, apperrors.ErrPizzaNotFound)
}

func (s *ServiceTestSuite) TestCreateRestaurantPizza() {
	rp, err := NewRestaurantPizzaService(s.db).CreateRestaurantPizza(30, s.geri.ID, s.sanjay.ID)

	s.Require().NoError(err)
	s.NotZero(rp.ID)
	s.Equal(30, rp.Price)
	s.Require().NotNil(rp.Pizza)
	s.Require().NotNil(rp.Restaurant)
	s.Equal("Geri", rp.Pizza.Name)
	s.Equal("Sanjay's Pizza", rp.Restaurant.Name)
	s.EqualValues(2, testutil.CountRestaurantPizzas(s.T(), s.db, s.sanjay.ID))
}

func (s *ServiceTestSuite) TestCreateRestaurantPizzaRejected() {
	testCases := []struct {
		name         string
		price        int
		pizzaID      int
		restaurantID int
		wantField    string
	}{
		{"price too high", 31, s.emma.ID, s.sanjay.ID, "price"},
		{"price too low", 0, s.emma.ID, s.sanjay.ID, "price"},
		{"unknown pizza", 10, 999, s.sanjay.ID, "pizza_id"},
		{"unknown restaurant", 10, s.emma.ID, 999, "restaurant_id"},
	}

	service := NewRestaurantPizzaService(s.db)
	for _, tt := range testCases {
		s.Run(tt.name, func() {
			_, err := service.CreateRestaurantPizza(tt.price, tt.pizzaID, tt.restaurantID)

			var validationErr *apperrors.ValidationError
			s.Require().ErrorAs(err, &validationErr)
			s.Equal(tt.wantField, validationErr.Field)
		})
	}
	s.EqualValues(3, testutil.CountRestaurantPizzas(s.T(), s.db))
}

// Store failures, simulated with sqlmock over the PostgreSQL dialect

var errConnReset = errors.New("connection reset by peer")

func TestDeleteRestaurantRollsBackOnStoreFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}).AddRow(1, "Kiki's Pizza", "address3"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "restaurant_pizzas"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "restaurants"`)).
		WillReturnError(errConnReset)
	mock.ExpectRollback()

	err := NewRestaurantService(db).DeleteRestaurant(1)

	assert.True(t, apperrors.IsStore(err))
	assert.ErrorIs(t, err, errConnReset)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRestaurantRollsBackWhenOffersCannotBeDeleted(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}).AddRow(1, "Kiki's Pizza", "address3"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "restaurant_pizzas"`)).
		WillReturnError(errConnReset)
	mock.ExpectRollback()

	err := NewRestaurantService(db).DeleteRestaurant(1)

	assert.True(t, apperrors.IsStore(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRestaurantMissingRollsBack(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}))
	mock.ExpectRollback()

	err := NewRestaurantService(db).DeleteRestaurant(7)

	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsStore(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRestaurantPizzaRollsBackOnStoreFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}).AddRow(3, "Kiki's Pizza", "address3"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "pizzas"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "ingredients"}).AddRow(1, "Emma", "Dough, Tomato Sauce, Cheese"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "restaurant_pizzas"`)).
		WillReturnError(errConnReset)
	mock.ExpectRollback()

	_, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(15, 1, 3)

	assert.True(t, apperrors.IsStore(err))
	assert.False(t, apperrors.IsValidation(err))
	assert.ErrorIs(t, err, errConnReset)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRestaurantPizzaInvalidPriceSkipsStore(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	_, err := NewRestaurantPizzaService(db).CreateRestaurantPizza(31, 1, 3)

	assert.True(t, apperrors.IsValidation(err))
	// No transaction is opened for rejected input
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFailuresAreStoreErrors(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "restaurants"`)).WillReturnError(errConnReset)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "pizzas"`)).WillReturnError(errConnReset)

	_, err := NewRestaurantService(db).GetAllRestaurants()
	assert.True(t, apperrors.IsStore(err))

	_, err = NewPizzaService(db).GetAllPizzas()
	assert.True(t, apperrors.IsStore(err))

	require.NoError(t, mock.ExpectationsWereMet())
}
