package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kamasanicharan/BoldScholars/internal/events"
	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/validator"
)

func newTestContentService(repo *mockRepository) (*contentService, *events.MockEventPublisher) {
	repo.userProfiles.byUID["admin-1"] = &models.UserProfile{
		UID:   "admin-1",
		Email: "staff@boldscholars.com",
		Role:  models.RoleAdmin,
	}
	publisher := events.NewMockEventPublisher(testLogger())
	svc := &contentService{
		repo:      repo,
		publisher: publisher,
		logger:    testLogger(),
		validator: validator.New(),
	}
	return svc, publisher
}

func validUploadRequest() *UploadContentRequest {
	return &UploadContentRequest{
		Title:       "Algebra Notes",
		Description: "Week one notes",
		Type:        models.ContentTypePDF,
		Category:    models.CategoryVault,
		SubCategory: models.SubCourseMaterials,
		Locked:      true,
	}
}

func pdfUpload() UploadFile {
	return UploadFile{
		Content:     []byte("%PDF-1.4 test"),
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
	}
}

func TestUploadStoresFileBeforeRecord(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestContentService(repo)

	item, err := svc.Upload(context.Background(), validUploadRequest(), pdfUpload(), "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if item.FileURL == nil || *item.FileURL == "" {
		t.Error("uploaded item has no file URL")
	}
	if item.CreatedBy != "admin-1" {
		t.Errorf("CreatedBy = %q, want admin-1", item.CreatedBy)
	}
	if repo.content.count() != 1 {
		t.Errorf("content records = %d, want 1", repo.content.count())
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("published events = %d, want 1", len(published))
	}
}

func TestUploadFailedBlobStoreCreatesNothing(t *testing.T) {
	repo := newMockRepository()
	repo.blob.storeErr = errors.New("bucket unavailable")
	svc, publisher := newTestContentService(repo)

	_, err := svc.Upload(context.Background(), validUploadRequest(), pdfUpload(), "admin-1")
	if err == nil {
		t.Fatal("Upload succeeded despite blob store failure")
	}

	// A failed upload must leave no record and no event: the catalog
	// never learns about an item whose file does not exist.
	if repo.content.count() != 0 {
		t.Errorf("content records after failed upload = %d, want 0", repo.content.count())
	}
	if published := publisher.GetPublishedEvents(); len(published) != 0 {
		t.Errorf("events after failed upload = %d, want 0", len(published))
	}
}

func TestUploadByNonAdminDenied(t *testing.T) {
	repo := newMockRepository()
	repo.userProfiles.byUID["member-1"] = &models.UserProfile{
		UID:   "member-1",
		Email: "member@example.com",
		Role:  models.RoleUser,
	}
	svc, publisher := newTestContentService(repo)

	_, err := svc.Upload(context.Background(), validUploadRequest(), pdfUpload(), "member-1")
	if !IsPermissionError(err) {
		t.Fatalf("Upload by non-admin error = %v, want permission error", err)
	}

	// A denied upload must touch nothing: no blob, no record, no event.
	if len(repo.blob.stored) != 0 {
		t.Errorf("blobs after denied upload = %d, want 0", len(repo.blob.stored))
	}
	if repo.content.count() != 0 {
		t.Errorf("content records after denied upload = %d, want 0", repo.content.count())
	}
	if published := publisher.GetPublishedEvents(); len(published) != 0 {
		t.Errorf("events after denied upload = %d, want 0", len(published))
	}
}

func TestUploadByUnknownUIDDenied(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestContentService(repo)

	_, err := svc.Upload(context.Background(), validUploadRequest(), pdfUpload(), "ghost")
	if !IsPermissionError(err) {
		t.Fatalf("Upload by unknown uid error = %v, want permission error", err)
	}
}

func TestUploadRejectsMismatchedSubCategory(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestContentService(repo)

	req := validUploadRequest()
	req.Category = models.CategoryMastery
	req.SubCategory = models.SubStudyGuides // Knowledge Vault only

	if _, err := svc.Upload(context.Background(), req, pdfUpload(), "admin-1"); err == nil {
		t.Error("Upload accepted a sub-category from the wrong enumeration")
	}
	if repo.content.count() != 0 {
		t.Errorf("invalid upload created %d records", repo.content.count())
	}
}

func TestUploadArticleWithoutFile(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestContentService(repo)

	req := validUploadRequest()
	req.Type = models.ContentTypeArticle

	item, err := svc.Upload(context.Background(), req, UploadFile{}, "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if item.FileURL != nil {
		t.Errorf("fileless upload got URL %q", *item.FileURL)
	}
}

func TestDeletePublishesAndRemovesBlob(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestContentService(repo)

	item, err := svc.Upload(context.Background(), validUploadRequest(), pdfUpload(), "admin-1")
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	publisher.ClearEvents()

	if err := svc.Delete(context.Background(), item.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if repo.content.count() != 0 {
		t.Errorf("content records after delete = %d, want 0", repo.content.count())
	}
	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("published events = %d, want 1", len(published))
	}
	if len(repo.blob.stored) != 0 {
		t.Errorf("blobs after delete = %d, want 0", len(repo.blob.stored))
	}
}

func TestDeleteUnknownContent(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestContentService(repo)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("Delete error = %v, want ErrContentNotFound", err)
	}
}
