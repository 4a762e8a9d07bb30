package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainListing "car-selling-service/internal/domain/listing"
	"car-selling-service/internal/logger"
	appErrors "car-selling-service/pkg/errors"
	"car-selling-service/pkg/utils"
)

// ImageFolder is the logical folder all listing images are uploaded under.
const ImageFolder = "car-listings"

// MaxImages is the upload cap per submission.
const MaxImages = 10

// Service implements the listing submission and retrieval use cases.
type Service struct {
	listingRepo domainListing.Repository
	imageStore  domainListing.ImageStore
}

// NewService creates a new listing service
func NewService(listingRepo domainListing.Repository, imageStore domainListing.ImageStore) *Service {
	return &Service{
		listingRepo: listingRepo,
		imageStore:  imageStore,
	}
}

// Submit validates the listing input, uploads the images and persists the
// listing for userID. All validation runs before any upload or store call;
// the first upload failure aborts the whole submission and no listing is
// created. Keys already uploaded in the failed attempt stay behind on the
// image host and are logged as orphaned.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, req *SubmitRequest, images []Image) (*ListingResponse, error) {
	if err := s.validate(req, images); err != nil {
		return nil, err
	}

	imageURLs := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.uploadImage(ctx, img)
		if err != nil {
			logger.Error("Image upload failed, aborting submission",
				zap.String("user_id", userID.String()),
				zap.String("filename", img.Filename),
				zap.Strings("orphaned_urls", imageURLs),
				zap.Error(err),
			)
			return nil, appErrors.NewAppError("UPLOAD_ERROR", appErrors.ErrUploadFailed.Error(), err)
		}
		imageURLs = append(imageURLs, url)
	}

	l := &domainListing.Listing{
		Model:  req.Model,
		Price:  req.Price,
		Phone:  req.Phone,
		City:   domainListing.City(req.City),
		Images: imageURLs,
		UserID: userID,
	}
	if err := s.listingRepo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to persist listing: %w", err)
	}

	logger.Info("Listing created",
		zap.String("listing_id", l.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("city", string(l.City)),
		zap.Int("images", len(imageURLs)),
		zap.String("event", "listing_created"),
	)

	return ToListingResponse(l), nil
}

// ListForUser returns every listing owned by userID in store order.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*ListingResponse, error) {
	listings, err := s.listingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	responses := make([]*ListingResponse, 0, len(listings))
	for _, l := range listings {
		responses = append(responses, ToListingResponse(l))
	}

	return responses, nil
}

func (s *Service) validate(req *SubmitRequest, images []Image) error {
	if req.Model == "" || req.Price == 0 || req.Phone == "" || req.City == "" {
		return appErrors.ErrMissingFields
	}
	if len(req.Model) < 3 {
		return appErrors.ErrInvalidModel
	}
	if !isElevenDigits(req.Phone) {
		return appErrors.ErrInvalidPhone
	}
	if !domainListing.City(req.City).IsValid() {
		return appErrors.ErrInvalidCity
	}
	if len(images) > MaxImages {
		return appErrors.ErrTooManyImages
	}
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	return nil
}

func isElevenDigits(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *Service) uploadImage(ctx context.Context, img Image) (string, error) {
	f, err := img.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image %q: %w", img.Filename, err)
	}
	defer f.Close()

	return s.imageStore.Upload(ctx, ImageFolder, img.Filename, img.ContentType, f)
}
