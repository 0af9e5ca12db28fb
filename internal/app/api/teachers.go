package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/savasana/yoga-web/internal/app/models"
)

// TeacherClient reads the teacher reference data.
type TeacherClient struct {
	rest *restClient
}

func (c *TeacherClient) ListAll(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.rest.do(ctx, http.MethodGet, "/api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (c *TeacherClient) GetByID(ctx context.Context, id int64) (models.Teacher, error) {
	var teacher models.Teacher
	if err := c.rest.do(ctx, http.MethodGet, fmt.Sprintf("/api/teacher/%d", id), nil, &teacher); err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}
