package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fitflow/internal/middleware"
	"fitflow/internal/mlclient"
	"fitflow/internal/models"
	"fitflow/internal/repository"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	DefaultPhotoUploadDir = "/tmp/fitflow/uploads/progress"
	MaxPhotoUploadBytes   = 5 * 1024 * 1024
	PhotoMasterMaxSize    = 2048
	PhotoThumbSize        = 256
	PhotoJPEGQuality      = 82
	PhotoWebPQuality      = 70
)

// ProgressService stores progress photos, generates thumbnails, and
// requests ML body analysis. Analysis failures never fail an upload.
type ProgressService struct {
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	analyzer     mlclient.Analyzer
	uploadDir    string
	now          func() time.Time
}

// NewProgressService returns a new ProgressService. analyzer may be nil
// when no ML service is configured.
func NewProgressService(
	progressRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
	analyzer mlclient.Analyzer,
	uploadDir string,
) *ProgressService {
	if uploadDir == "" {
		uploadDir = DefaultPhotoUploadDir
	}
	return &ProgressService{
		progressRepo: progressRepo,
		userRepo:     userRepo,
		analyzer:     analyzer,
		uploadDir:    uploadDir,
		now:          time.Now,
	}
}

// UploadPhotoInput is the payload for a progress photo upload. Metric
// fields fall back to the user's profile when zero.
type UploadPhotoInput struct {
	UserID   uint
	Filename string
	Content  []byte
	Weight   float64
	Height   float64
	Age      int
	Gender   string
	Notes    string
}

// Upload validates and stores the photo, writes a webp thumbnail, and
// attaches an ML analysis when the analyzer is reachable.
func (s *ProgressService) Upload(ctx context.Context, in UploadPhotoInput) (*models.ProgressPhoto, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > MaxPhotoUploadBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", MaxPhotoUploadBytes/(1024*1024)))
	}
	if !isAllowedPhotoMIME(http.DetectContentType(in.Content)) {
		return nil, models.NewValidationError("Invalid image type")
	}
	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}

	s.fillMetricsFromProfile(ctx, &in)

	master := resizePhotoToFit(decoded, PhotoMasterMaxSize)
	masterBytes, err := encodePhotoJPEG(master)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	thumb := resizePhotoToFit(decoded, PhotoThumbSize)
	thumbBytes, err := encodePhotoWebP(thumb)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	hash := photoHash(in.UserID, masterBytes)
	masterRel := filepath.ToSlash(filepath.Join(hash, "photo.jpg"))
	thumbRel := filepath.ToSlash(filepath.Join(hash, "thumb.webp"))
	if err := writePhotoFile(filepath.Join(s.uploadDir, masterRel), masterBytes); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := writePhotoFile(filepath.Join(s.uploadDir, thumbRel), thumbBytes); err != nil {
		_ = os.Remove(filepath.Join(s.uploadDir, masterRel))
		return nil, models.NewInternalError(err)
	}

	photo := &models.ProgressPhoto{
		UserID:   in.UserID,
		ImageURL: "/media/progress/" + masterRel,
		ThumbURL: "/media/progress/" + thumbRel,
		Weight:   in.Weight,
		Height:   in.Height,
		Age:      in.Age,
		Gender:   in.Gender,
		Notes:    in.Notes,
		Date:     s.now().UTC(),
	}
	if err := s.progressRepo.Create(ctx, photo); err != nil {
		return nil, err
	}

	s.tryAnalyze(ctx, photo, masterBytes, in)
	return photo, nil
}

// tryAnalyze requests body analysis and attaches the result. Any
// failure is logged and swallowed.
func (s *ProgressService) tryAnalyze(ctx context.Context, photo *models.ProgressPhoto, imageBytes []byte, in UploadPhotoInput) {
	if s.analyzer == nil {
		return
	}
	result, err := s.analyzer.Analyze(ctx, mlclient.AnalysisRequest{
		Image:    imageBytes,
		Filename: "photo.jpg",
		WeightKg: in.Weight,
		HeightCm: in.Height,
		Age:      in.Age,
		Gender:   in.Gender,
	})
	if err != nil {
		middleware.Logger.Warn("body analysis unavailable, storing photo without it",
			"photo_id", photo.ID, "error", err)
		return
	}
	analysis := &models.BodyAnalysis{
		ProgressPhotoID: photo.ID,
		BodyFatEstimate: result.BodyFatEstimate,
		MuscleScore:     result.MuscleScore,
		PostureScore:    result.PostureScore,
		OverallScore:    result.OverallScore,
		Confidence:      result.Confidence,
		QualityScore:    result.QualityScore,
	}
	if err := s.progressRepo.AttachAnalysis(ctx, analysis); err != nil {
		middleware.Logger.Warn("failed to persist body analysis", "photo_id", photo.ID, "error", err)
		return
	}
	photo.Analysis = analysis
}

func (s *ProgressService) fillMetricsFromProfile(ctx context.Context, in *UploadPhotoInput) {
	if in.Weight > 0 && in.Height > 0 && in.Age > 0 && in.Gender != "" {
		return
	}
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return
	}
	if in.Weight <= 0 {
		in.Weight = user.CurrentWeight
	}
	if in.Height <= 0 {
		in.Height = user.Height
	}
	if in.Age <= 0 {
		in.Age = user.Age
	}
	if in.Gender == "" {
		in.Gender = user.Gender
	}
}

// List returns the user's photos, newest first.
func (s *ProgressService) List(ctx context.Context, userID uint) ([]models.ProgressPhoto, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}

// Get returns one photo owned by the user.
func (s *ProgressService) Get(ctx context.Context, userID, id uint) (*models.ProgressPhoto, error) {
	return s.progressRepo.GetByID(ctx, userID, id)
}

// Delete removes a photo record and its files on disk.
func (s *ProgressService) Delete(ctx context.Context, userID, id uint) error {
	photo, err := s.progressRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.progressRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	for _, url := range []string{photo.ImageURL, photo.ThumbURL} {
		if !strings.HasPrefix(url, "/media/progress/") {
			continue
		}
		rel := strings.TrimPrefix(url, "/media/progress/")
		_ = os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(rel)))
	}
	return nil
}

func isAllowedPhotoMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}

func resizePhotoToFit(src image.Image, maxSize int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || (w <= maxSize && h <= maxSize) {
		return src
	}
	scale := float64(maxSize) / float64(w)
	if sh := float64(maxSize) / float64(h); sh < scale {
		scale = sh
	}
	newW := max(int(float64(w)*scale), 1)
	newH := max(int(float64(h)*scale), 1)
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodePhotoJPEG(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: PhotoJPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePhotoWebP(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: PhotoWebPQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func photoHash(userID uint, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%d:", userID)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func writePhotoFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
