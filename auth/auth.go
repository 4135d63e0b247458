package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"voyago/db"
	"voyago/middleware"
	"voyago/models"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the document store this package needs.
type UserStore interface {
	FindUser(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
}

type Handler struct {
	Store  UserStore
	Tokens *middleware.Auth
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.Store.FindUser(r.Context(), input.Username)
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Username already exists")
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.Printf("register lookup: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := &models.User{Username: input.Username, Password: hashed}
	if err := h.Store.InsertUser(r.Context(), user); err != nil {
		log.Printf("register insert: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "User registered successfully"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// Unknown user and wrong password are indistinguishable on purpose.
	user, err := h.Store.FindUser(r.Context(), input.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.Tokens.NewToken(user.ID.Hex(), user.Username)
	if err != nil {
		log.Printf("token mint: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"access_token": token})
}
