package handler

import (
	"CreatorHub/internal/api/dto"
	"CreatorHub/internal/pkg/response"
	"CreatorHub/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (s *ContentHandler) Generate(c *gin.Context) {
	userID := c.GetString("user_id")

	var req dto.GenerateContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.contentSvc.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

func (s *ContentHandler) GetBank(c *gin.Context) {
	userID := c.GetString("user_id")

	var query dto.ContentBankQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	bank, err := s.contentSvc.GetBank(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, bank)
}

func (s *ContentHandler) GetByID(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("content_id")

	idea, err := s.contentSvc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

func (s *ContentHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("content_id")

	if err := s.contentSvc.Delete(c.Request.Context(), userID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ContentHandler) Niches(c *gin.Context) {
	response.Success(c, s.contentSvc.Niches())
}
