package main

import (
	"errors"
	"net/http"

	"bitbucket.org/mmdatafocus/pos_backend/models"
	"bitbucket.org/mmdatafocus/pos_backend/utils"
	"github.com/gin-gonic/gin"
)

type loginInput struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := models.GetUserByUserName(c.Request.Context(), input.UserName)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		respondDomainError(c, "userHandlers.go", "loginHandler", err)
		return
	}

	if err := utils.ComparePassword(user.Password, input.Password); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := utils.JwtGenerate(user.ID, user.UserName)
	if err != nil {
		respondDomainError(c, "userHandlers.go", "loginHandler", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

func createUserHandler(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		respondDomainError(c, "userHandlers.go", "createUserHandler", err)
		return
	}
	respondData(c, http.StatusCreated, user)
}

func getUserHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	user, err := models.GetUser(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, "userHandlers.go", "getUserHandler", err)
		return
	}
	respondData(c, http.StatusOK, user)
}

func listUsersHandler(c *gin.Context) {
	users, err := models.GetUsers(c.Request.Context())
	if err != nil {
		respondDomainError(c, "userHandlers.go", "listUsersHandler", err)
		return
	}
	respondData(c, http.StatusOK, users)
}

func updateUserHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var input models.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := models.UpdateUser(c.Request.Context(), id, &input)
	if err != nil {
		respondDomainError(c, "userHandlers.go", "updateUserHandler", err)
		return
	}
	respondData(c, http.StatusOK, user)
}

func deleteUserHandler(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	if err := models.DeleteUser(c.Request.Context(), id); err != nil {
		respondDomainError(c, "userHandlers.go", "deleteUserHandler", err)
		return
	}
	respondMessage(c, http.StatusOK, "user deleted")
}
