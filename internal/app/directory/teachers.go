package directory

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
)

const (
	allTeachersKey = "teachers:all"
)

// TeacherSource is the upstream the directory reads through.
// *api.TeacherClient satisfies it.
type TeacherSource interface {
	ListAll(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id int64) (models.Teacher, error)
}

// TeacherDirectory is a TTL cache over the read-only teacher reference data.
// Class sessions are never cached; teachers change rarely enough that the
// list and form views can share a short-lived copy.
type TeacherDirectory struct {
	source TeacherSource
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewTeacherDirectory(source TeacherSource, ttl time.Duration, logger *zap.Logger) *TeacherDirectory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherDirectory{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// All returns every teacher, from cache when fresh.
func (d *TeacherDirectory) All(ctx context.Context) ([]models.Teacher, error) {
	if cached, ok := d.cache.Get(allTeachersKey); ok {
		return cached.([]models.Teacher), nil
	}

	teachers, err := d.source.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	d.cache.SetDefault(allTeachersKey, teachers)
	for _, t := range teachers {
		d.cache.SetDefault(teacherKey(t.ID), t)
	}
	d.logger.Debug("Teacher directory refreshed", zap.Int("count", len(teachers)))
	return teachers, nil
}

// ByID returns one teacher, from cache when fresh. An unknown id surfaces as
// models.ErrNotFound from the upstream.
func (d *TeacherDirectory) ByID(ctx context.Context, id int64) (models.Teacher, error) {
	if cached, ok := d.cache.Get(teacherKey(id)); ok {
		return cached.(models.Teacher), nil
	}

	teacher, err := d.source.GetByID(ctx, id)
	if err != nil {
		return models.Teacher{}, err
	}
	d.cache.SetDefault(teacherKey(teacher.ID), teacher)
	return teacher, nil
}

// Invalidate drops every cached entry.
func (d *TeacherDirectory) Invalidate() {
	d.cache.Flush()
}

func teacherKey(id int64) string {
	return "teacher:" + strconv.FormatInt(id, 10)
}
