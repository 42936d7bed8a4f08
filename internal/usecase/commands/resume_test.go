//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domresume "jobradar/internal/domain/resume"
	"jobradar/internal/domain/posting"
	"jobradar/internal/infra"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/errs"
	"jobradar/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResumeStore struct {
	created     *domresume.Record
	createdID   uuid.UUID
	records     map[uuid.UUID]*domresume.Record
	deactivated []uuid.UUID
}

func (s *fakeResumeStore) Create(_ context.Context, rec *domresume.Record) (uuid.UUID, error) {
	s.created = rec
	s.createdID = uuid.New()
	return s.createdID, nil
}

func (s *fakeResumeStore) FindByID(_ context.Context, id uuid.UUID) (*domresume.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("resume not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (s *fakeResumeStore) Deactivate(_ context.Context, id uuid.UUID) error {
	s.deactivated = append(s.deactivated, id)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (e *fakeExtractor) ExtractText(_ []byte) (string, error) {
	return e.text, e.err
}

type fakeFileStore struct {
	saved     map[string][]byte
	removed   []string
	removeErr error
}

func (f *fakeFileStore) Save(filename string, data []byte) error {
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[filename] = data
	return nil
}

func (f *fakeFileStore) Remove(filename string) error {
	f.removed = append(f.removed, filename)
	return f.removeErr
}

func TestResumeUpload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("extracts keywords and stores file and record", func(t *testing.T) {
		store := &fakeResumeStore{}
		files := &fakeFileStore{}
		extractor := &fakeExtractor{
			text: "Senior Software Engineer, 5 years React and Node.js experience, B.S. Computer Science",
		}

		uc := commands.NewResumeCommands(store, extractor, files, clock.NewMockClock(now), nil)
		result, err := uc.Upload(ctx, commands.UploadResumeRequest{
			UserID:       uuid.New(),
			OriginalName: "cv.pdf",
			Data:         []byte("%PDF-1.4 fake"),
		})

		require.NoError(t, err)
		assert.Equal(t, store.createdID, result.ID)
		assert.Equal(t, "cv.pdf", result.OriginalName)
		assert.Equal(t, now, result.UploadDate)
		assert.Subset(t, result.Keywords, []string{"react", "node.js"})
		assert.True(t, result.Education)
		assert.Equal(t, posting.LevelSenior, result.ExperienceLevel)

		require.NotNil(t, store.created)
		assert.True(t, store.created.IsActive)
		assert.Len(t, files.saved, 1)
		_, ok := files.saved[store.created.Filename]
		assert.True(t, ok)
	})

	t.Run("empty extracted text is rejected", func(t *testing.T) {
		files := &fakeFileStore{}
		uc := commands.NewResumeCommands(&fakeResumeStore{}, &fakeExtractor{text: "  \n "}, files, clock.NewMockClock(now), nil)

		_, err := uc.Upload(ctx, commands.UploadResumeRequest{UserID: uuid.New(), Data: []byte("x")})

		assert.ErrorIs(t, err, errs.ErrEmptyResume)
		assert.Empty(t, files.saved)
	})

	t.Run("parser failure surfaces", func(t *testing.T) {
		uc := commands.NewResumeCommands(&fakeResumeStore{}, &fakeExtractor{err: errs.New("not a pdf")}, &fakeFileStore{}, clock.NewMockClock(now), nil)

		_, err := uc.Upload(ctx, commands.UploadResumeRequest{UserID: uuid.New(), Data: []byte("junk")})
		assert.Error(t, err)
	})
}

func TestResumeDelete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	owner := uuid.New()
	resumeID := uuid.New()

	newStore := func() *fakeResumeStore {
		return &fakeResumeStore{records: map[uuid.UUID]*domresume.Record{
			resumeID: {ID: resumeID, UserID: owner, Filename: "abc.pdf", IsActive: true},
		}}
	}

	t.Run("owner can delete", func(t *testing.T) {
		store := newStore()
		files := &fakeFileStore{}
		uc := commands.NewResumeCommands(store, &fakeExtractor{}, files, clock.NewMockClock(now), nil)

		require.NoError(t, uc.Delete(ctx, resumeID, owner))
		assert.Equal(t, []uuid.UUID{resumeID}, store.deactivated)
		assert.Equal(t, []string{"abc.pdf"}, files.removed)
	})

	t.Run("foreign resume reads as not found", func(t *testing.T) {
		store := newStore()
		uc := commands.NewResumeCommands(store, &fakeExtractor{}, &fakeFileStore{}, clock.NewMockClock(now), nil)

		err := uc.Delete(ctx, resumeID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrResumeNotFound)
		assert.Empty(t, store.deactivated)
	})

	t.Run("file removal failure never fails the delete", func(t *testing.T) {
		store := newStore()
		files := &fakeFileStore{removeErr: errs.New("disk gone")}
		uc := commands.NewResumeCommands(store, &fakeExtractor{}, files, clock.NewMockClock(now), nil)

		require.NoError(t, uc.Delete(ctx, resumeID, owner))
		assert.Equal(t, []uuid.UUID{resumeID}, store.deactivated)
	})

	t.Run("unknown resume", func(t *testing.T) {
		uc := commands.NewResumeCommands(&fakeResumeStore{}, &fakeExtractor{}, &fakeFileStore{}, clock.NewMockClock(now), nil)

		err := uc.Delete(ctx, uuid.New(), owner)
		assert.ErrorIs(t, err, errs.ErrResumeNotFound)
	})
}
