package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fam-nudger/backend/internal/models"
	"github.com/fam-nudger/backend/internal/service"
	"github.com/fam-nudger/backend/internal/types"
)

type MemberHandler struct {
	members service.IMemberService
}

func NewMemberHandler(members service.IMemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) RegisterRoutes(router *gin.RouterGroup) {
	members := router.Group("/members")
	{
		members.POST("", h.CreateMember)
		members.GET("", h.ListMembers)
		members.GET("/:id", h.GetMember)
		members.PUT("/:id", h.UpdateMember)
		members.DELETE("/:id", h.DeleteMember)
	}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member := &models.FamilyMember{
		Name:       req.Name,
		MemberType: req.MemberType,
		Age:        req.Age,
		Conditions: req.Conditions,
		Allergies:  req.Allergies,
	}
	created, err := h.members.CreateMember(c.Request.Context(), userID, member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	members, err := h.members.ListMembers(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	member, err := h.members.GetMember(c.Request.Context(), userID, memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var req types.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := h.members.UpdateMember(c.Request.Context(), userID, memberID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.members.DeleteMember(c.Request.Context(), userID, memberID); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}
