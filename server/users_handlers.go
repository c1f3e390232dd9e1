package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jrsteele09/crm-gateway-admin/users"
	"github.com/rs/zerolog/log"
)

// UsersPageData lists the tenant's users; Editing is set when ?edit={id} selects one
type UsersPageData struct {
	Users   []users.User
	Roles   []users.RoleType
	Editing *users.User
}

// UsersListHandler renders the user management page
func (s *Server) UsersListHandler() http.HandlerFunc {
	tmpl := mustParse(ParsePage("users.html"))

	return func(w http.ResponseWriter, r *http.Request) {
		page := s.newPageData(r, "users", "Gestión de Usuarios")
		repo := s.backend.Users(page.Session)
		data := UsersPageData{Roles: users.Roles}

		list, err := repo.List(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("Failed to list users")
			page.Error = userMessage(err)
		}
		data.Users = list

		if raw := r.URL.Query().Get("edit"); raw != "" {
			id, convErr := strconv.ParseInt(raw, 10, 64)
			if convErr == nil {
				data.Editing, err = repo.Get(r.Context(), id)
			}
			if convErr != nil || err != nil {
				log.Warn().Err(err).Str("id", raw).Msg("Failed to load user for editing")
				page.Error = "No se pudo cargar el usuario seleccionado."
			}
		}

		page.Data = data
		renderPage(w, r, tmpl, page)
	}
}

// UserCreateHandler creates a user in the session's tenant
func (s *Server) UserCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input := parseUserForm(r)
		messages := s.validateForm(input)
		if input.Password == "" {
			messages = append(messages, "La contraseña es requerida para nuevos usuarios.")
		}
		if input.Role == "" {
			messages = append(messages, "El rol es requerido.")
		}
		if len(messages) > 0 {
			redirectWithError(w, r, RouteUsers, strings.Join(messages, " "))
			return
		}

		user, err := s.backend.Users(currentSession(r)).Create(r.Context(), input)
		if err != nil {
			log.Warn().Err(err).Str("email", input.Email).Msg("Failed to create user")
			redirectWithError(w, r, RouteUsers, userMessage(err))
			return
		}

		log.Info().Int64("user_id", user.ID).Msg("User created")
		redirectWithMessage(w, r, RouteUsers, "Usuario creado exitosamente.")
	}
}

// UserUpdateHandler updates a user; an empty password keeps the current one
func (s *Server) UserUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		editURL := fmt.Sprintf("%s?edit=%d", RouteUsers, id)
		input := parseUserForm(r)
		if messages := s.validateForm(input); len(messages) > 0 {
			redirectSuccess(w, r, editURL+"&error="+queryEscape(strings.Join(messages, " ")))
			return
		}

		if _, err := s.backend.Users(currentSession(r)).Update(r.Context(), id, input); err != nil {
			log.Warn().Err(err).Int64("user_id", id).Msg("Failed to update user")
			redirectSuccess(w, r, editURL+"&error="+queryEscape(userMessage(err)))
			return
		}

		log.Info().Int64("user_id", id).Msg("User updated")
		redirectWithMessage(w, r, RouteUsers, "Usuario actualizado exitosamente.")
	}
}

// UserDeleteHandler removes a user
func (s *Server) UserDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}

		if err := s.backend.Users(currentSession(r)).Delete(r.Context(), id); err != nil {
			log.Warn().Err(err).Int64("user_id", id).Msg("Failed to delete user")
			redirectWithError(w, r, RouteUsers, userMessage(err))
			return
		}

		log.Info().Int64("user_id", id).Msg("User deleted")
		redirectWithMessage(w, r, RouteUsers, "Usuario eliminado exitosamente.")
	}
}
