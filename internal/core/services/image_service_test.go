package services

import (
	"errors"
	"testing"

	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStorage is an in-memory stand-in for the file storage collaborator.
type memStorage struct {
	files      map[string][]byte
	saveErr    error
	removeErr  error
	nextSuffix int
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (m *memStorage) GenerateFileName(originalName string) string {
	m.nextSuffix++
	return "stored-" + originalName
}

func (m *memStorage) ImagesDir() string { return "/tmp/images" }

func (m *memStorage) ImageURL(fileName string) string { return "/static/images/" + fileName }

func (m *memStorage) Save(fileName string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.files[fileName] = data
	return nil
}

func (m *memStorage) Remove(fileName string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.files, fileName)
	return nil
}

func newImageService(db *gorm.DB, storage *memStorage) *ImageService {
	return NewImageService(
		repositories.NewImageRepository(db),
		repositories.NewRoomRepository(db),
		storage,
	)
}

func TestImageUpload(t *testing.T) {
	db := setupTestDB(t)
	storage := newMemStorage()
	svc := newImageService(db, storage)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	img, err := svc.Upload(testCtx(), room.ID, "fachada.jpg", []byte("jpegdata"))
	require.NoError(t, err)

	assert.Equal(t, "fachada.jpg", img.OriginalName)
	assert.Equal(t, int64(8), img.SizeBytes)
	assert.Equal(t, "/static/images/stored-fachada.jpg", img.URL)
	assert.Contains(t, storage.files, "stored-fachada.jpg")
}

func TestImageUploadRejectsExtension(t *testing.T) {
	db := setupTestDB(t)
	storage := newMemStorage()
	svc := newImageService(db, storage)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	_, err := svc.Upload(testCtx(), room.ID, "contrato.pdf", []byte("pdf"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, storage.files)

	_, err = svc.Upload(testCtx(), room.ID, "vacia.png", nil)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestImageUploadUnknownRoom(t *testing.T) {
	db := setupTestDB(t)
	storage := newMemStorage()
	svc := newImageService(db, storage)

	_, err := svc.Upload(testCtx(), 99, "foto.png", []byte("png"))
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, storage.files)
}

func TestImageDeleteSwallowsFileError(t *testing.T) {
	db := setupTestDB(t)
	storage := newMemStorage()
	svc := newImageService(db, storage)

	owner := seedOwner(t, db, "laura@example.com")
	room := seedRoom(t, db, owner.ID, "Cuarto 1")

	img, err := svc.Upload(testCtx(), room.ID, "foto.png", []byte("png"))
	require.NoError(t, err)

	// Even when the backing file cannot be removed the row goes away.
	storage.removeErr = errors.New("disk detached")
	require.NoError(t, svc.Delete(testCtx(), img.ID))

	gone, err := svc.GetByID(testCtx(), img.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestImageDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := newImageService(db, newMemStorage())

	err := svc.Delete(testCtx(), 42)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
