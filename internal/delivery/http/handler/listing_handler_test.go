package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainListing "car-selling-service/internal/domain/listing"
	"car-selling-service/internal/middleware"
	listingUsecase "car-selling-service/internal/usecase/listing"
	"car-selling-service/pkg/utils"
)

type fakeListingRepo struct {
	created  []*domainListing.Listing
	listings []*domainListing.Listing
}

func (r *fakeListingRepo) Create(_ context.Context, l *domainListing.Listing) error {
	l.ID = uuid.New()
	l.CreatedAt = time.Now()
	l.UpdatedAt = time.Now()
	r.created = append(r.created, l)
	return nil
}

func (r *fakeListingRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domainListing.Listing, error) {
	var owned []*domainListing.Listing
	for _, l := range r.listings {
		if l.UserID == userID {
			owned = append(owned, l)
		}
	}
	return owned, nil
}

type fakeImageStore struct {
	uploads int
	err     error
}

func (s *fakeImageStore) Upload(_ context.Context, folder, filename, _ string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	return fmt.Sprintf("https://images.example.com/%s/%s", folder, filename), nil
}

func listingRouter(t *testing.T, repo *fakeListingRepo, store *fakeImageStore) *gin.Engine {
	t.Helper()

	router := gin.New()
	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(testCfg()))
	NewListingHandler(listingUsecase.NewService(repo, store)).RegisterRoutes(protected)
	return router
}

func bearerFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token, err := utils.GenerateToken(userID.String(), []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func multipartBody(t *testing.T, fields map[string]string, imageNames []string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range imageNames {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"model": "Civic 2020",
		"price": "4500000",
		"phone": "03001234567",
		"city":  "Lahore",
	}
}

func TestSubmitEndpoint_Success(t *testing.T) {
	repo := &fakeListingRepo{}
	store := &fakeImageStore{}
	router := listingRouter(t, repo, store)
	userID := uuid.New()

	body, contentType := multipartBody(t, validFields(), []string{"front.jpg", "back.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerFor(t, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 2, store.uploads)
	require.Len(t, repo.created, 1)
	assert.Equal(t, userID, repo.created[0].UserID)

	var resp listingUsecase.ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Civic 2020", resp.Model)
	assert.Equal(t, userID, resp.UserID)
	assert.Len(t, resp.Images, 2)
}

func TestSubmitEndpoint_NoAuthHeader(t *testing.T) {
	router := listingRouter(t, &fakeListingRepo{}, &fakeImageStore{})

	body, contentType := multipartBody(t, validFields(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/cars", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No authentication token found"}`, rec.Body.String())
}

func TestSubmitEndpoint_InvalidPhone(t *testing.T) {
	repo := &fakeListingRepo{}
	store := &fakeImageStore{}
	router := listingRouter(t, repo, store)

	fields := validFields()
	fields["phone"] = "12345"
	body, contentType := multipartBody(t, fields, []string{"front.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerFor(t, uuid.New()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Phone number must be 11 digits"}`, rec.Body.String())
	assert.Zero(t, store.uploads)
	assert.Empty(t, repo.created)
}

func TestSubmitEndpoint_MissingFields(t *testing.T) {
	router := listingRouter(t, &fakeListingRepo{}, &fakeImageStore{})

	fields := validFields()
	delete(fields, "city")
	body, contentType := multipartBody(t, fields, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerFor(t, uuid.New()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"All fields are required"}`, rec.Body.String())
}

func TestSubmitEndpoint_UploadFailure(t *testing.T) {
	repo := &fakeListingRepo{}
	store := &fakeImageStore{err: errors.New("image host unavailable")}
	router := listingRouter(t, repo, store)

	body, contentType := multipartBody(t, validFields(), []string{"front.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerFor(t, uuid.New()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error submitting car listing"}`, rec.Body.String())
	assert.Empty(t, repo.created)
}

func TestListEndpoint_ReturnsOwnListings(t *testing.T) {
	repo := &fakeListingRepo{}
	router := listingRouter(t, repo, &fakeImageStore{})
	userID := uuid.New()

	repo.listings = []*domainListing.Listing{
		{ID: uuid.New(), UserID: userID, Model: "Civic 2020", City: domainListing.CityLahore},
		{ID: uuid.New(), UserID: uuid.New(), Model: "Corolla 2019", City: domainListing.CityKarachi},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/cars/user", nil)
	req.Header.Set("Authorization", bearerFor(t, userID))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []listingUsecase.ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Civic 2020", resp[0].Model)
}

func TestListEndpoint_NoAuthHeader(t *testing.T) {
	router := listingRouter(t, &fakeListingRepo{}, &fakeImageStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/cars/user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No authentication token found"}`, rec.Body.String())
}
