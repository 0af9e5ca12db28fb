package sessions

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/savasana/yoga-web/internal/app/models"
)

// Row is one session in the list view, with its teacher resolved by name and
// the admin-only edit affordance decided.
type Row struct {
	models.ClassSession
	TeacherName string `json:"teacherName"`
	CanEdit     bool   `json:"canEdit"`
}

// ListView is everything the session list renders.
type ListView struct {
	Sessions  []Row `json:"sessions"`
	CanCreate bool  `json:"canCreate"`
}

// ListController builds the session list. Create and per-row edit
// affordances are shown to admins only.
type ListController struct {
	api      SessionAPI
	teachers TeacherDirectory
	auth     AuthState
	logger   *zap.Logger
}

func NewListController(api SessionAPI, teachers TeacherDirectory, auth AuthState, logger *zap.Logger) *ListController {
	return &ListController{api: api, teachers: teachers, auth: auth, logger: logger}
}

// Activate fetches the sessions and the teacher directory concurrently and
// assembles the view. The sessions keep the server-defined order.
func (lc *ListController) Activate(ctx context.Context) (ListView, error) {
	var (
		sessions []models.ClassSession
		teachers []models.Teacher
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = lc.api.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teachers, err = lc.teachers.All(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ListView{}, err
	}

	names := make(map[int64]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.FirstName + " " + t.LastName
	}

	isAdmin := lc.auth.IsAdmin()
	view := ListView{CanCreate: isAdmin, Sessions: make([]Row, 0, len(sessions))}
	for _, s := range sessions {
		view.Sessions = append(view.Sessions, Row{
			ClassSession: s,
			TeacherName:  names[s.TeacherID],
			CanEdit:      isAdmin,
		})
	}
	return view, nil
}
