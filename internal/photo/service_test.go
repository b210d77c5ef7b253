package photo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emreyalim/stayhub-backend/internal/property"
)

type fakeRepo struct {
	byID      map[string]*Photo
	createErr error
	deleted   []string
}

func newFakeRepo(photos ...*Photo) *fakeRepo {
	r := &fakeRepo{byID: make(map[string]*Photo)}
	for _, p := range photos {
		r.byID[p.ID] = p
	}
	return r
}

func (f *fakeRepo) Create(ctx context.Context, p *Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Photo, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) ListByProperty(ctx context.Context, propertyID string) ([]*Photo, error) {
	var out []*Photo
	for _, p := range f.byID {
		if p.PropertyID == propertyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakePropService only answers GetByID; the photo service never calls the rest.
type fakePropService struct {
	byID map[string]*property.Property
}

func (f *fakePropService) GetByID(ctx context.Context, id string) (*property.Property, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, property.ErrNotFound
	}
	return p, nil
}

func (f *fakePropService) Create(ctx context.Context, req property.CreateRequest) (*property.Property, error) {
	panic("not used")
}

func (f *fakePropService) List(ctx context.Context, filter property.Filter) ([]*property.Property, int, error) {
	panic("not used")
}

func (f *fakePropService) Update(ctx context.Context, id string, req property.UpdateRequest, actorID string) (*property.Property, error) {
	panic("not used")
}

func (f *fakePropService) Delete(ctx context.Context, id string, actorID string) error {
	panic("not used")
}

type fakeStorage struct {
	blobs map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: make(map[string][]byte)}
}

func (f *fakeStorage) Save(ctx context.Context, path string, content io.Reader) error {
	b, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	f.blobs[path] = b
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	b, ok := f.blobs[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.blobs, path)
	return nil
}

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testProperty() *property.Property {
	return &property.Property{ID: "prop-1", HostID: "host-1", Title: "Lake cabin"}
}

func newTestService(repo *fakeRepo, store *fakeStorage) Service {
	props := &fakePropService{byID: map[string]*property.Property{"prop-1": testProperty()}}
	return NewService(repo, props, store)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("stores original and thumbnail", func(t *testing.T) {
		repo := newFakeRepo()
		store := newFakeStorage()
		svc := newTestService(repo, store)

		header := makeFileHeader(t, "cabin.png", "image/png", pngBytes(t))

		p, err := svc.Upload(ctx, header, "prop-1", "host-1")
		require.NoError(t, err)
		require.Equal(t, "prop-1", p.PropertyID)
		require.Equal(t, "host-1", p.UploaderID)
		require.Equal(t, "cabin.png", p.Filename)
		require.NotNil(t, p.ThumbnailPath)

		require.Contains(t, store.blobs, p.StoragePath)
		require.Contains(t, store.blobs, *p.ThumbnailPath)
		require.Contains(t, repo.byID, p.ID)
	})

	t.Run("rejects non-owner", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), newFakeStorage())
		header := makeFileHeader(t, "cabin.png", "image/png", pngBytes(t))

		_, err := svc.Upload(ctx, header, "prop-1", "someone-else")
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("rejects non-image content", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), newFakeStorage())
		header := makeFileHeader(t, "notes.txt", "text/plain", []byte("hello"))

		_, err := svc.Upload(ctx, header, "prop-1", "host-1")
		require.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("unknown property", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), newFakeStorage())
		header := makeFileHeader(t, "cabin.png", "image/png", pngBytes(t))

		_, err := svc.Upload(ctx, header, "nope", "host-1")
		require.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("cleans up storage when the record insert fails", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New("db down")
		store := newFakeStorage()
		svc := newTestService(repo, store)

		header := makeFileHeader(t, "cabin.png", "image/png", pngBytes(t))

		_, err := svc.Upload(ctx, header, "prop-1", "host-1")
		require.Error(t, err)
		require.Empty(t, store.blobs)
	})
}

func TestDownloadThumbnail(t *testing.T) {
	ctx := context.Background()

	t.Run("missing thumbnail", func(t *testing.T) {
		repo := newFakeRepo(&Photo{ID: "p1", PropertyID: "prop-1", StoragePath: "photos/p1/p1.png"})
		svc := newTestService(repo, newFakeStorage())

		_, _, err := svc.DownloadThumbnail(ctx, "p1")
		require.ErrorIs(t, err, ErrNoThumbnail)
	})

	t.Run("streams thumbnail", func(t *testing.T) {
		thumb := "photos/p1/p1_thumb.jpg"
		repo := newFakeRepo(&Photo{ID: "p1", PropertyID: "prop-1", StoragePath: "photos/p1/p1.png", ThumbnailPath: &thumb})
		store := newFakeStorage()
		store.blobs[thumb] = []byte("jpeg-bytes")
		svc := newTestService(repo, store)

		stream, p, err := svc.DownloadThumbnail(ctx, "p1")
		require.NoError(t, err)
		defer stream.Close()

		require.Equal(t, "p1", p.ID)
		b, err := io.ReadAll(stream)
		require.NoError(t, err)
		require.Equal(t, []byte("jpeg-bytes"), b)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes record and blobs", func(t *testing.T) {
		thumb := "photos/p1/p1_thumb.jpg"
		repo := newFakeRepo(&Photo{ID: "p1", PropertyID: "prop-1", StoragePath: "photos/p1/p1.png", ThumbnailPath: &thumb})
		store := newFakeStorage()
		store.blobs["photos/p1/p1.png"] = []byte("png")
		store.blobs[thumb] = []byte("jpg")
		svc := newTestService(repo, store)

		require.NoError(t, svc.Delete(ctx, "p1", "host-1"))
		require.Empty(t, store.blobs)
		require.Empty(t, repo.byID)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		repo := newFakeRepo(&Photo{ID: "p1", PropertyID: "prop-1", StoragePath: "photos/p1/p1.png"})
		svc := newTestService(repo, newFakeStorage())

		err := svc.Delete(ctx, "p1", "someone-else")
		require.ErrorIs(t, err, ErrPermissionDenied)
	})
}
