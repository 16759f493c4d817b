package adminapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/auth"
	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerAuthRoutes() {
	webserver.PubPOST("/admin/login", login)
	webserver.ApiGET("/me", me)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminInfo struct {
	ID    int64  `json:"id,string"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Email y contraseña requeridos")
	}
	if payload.Email == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "Email y contraseña requeridos")
	}

	var admin domain.Admin
	err := GetDB(c).Where("email = ? AND is_active = ?", strings.ToLower(payload.Email), true).
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Same response as a wrong password: no account enumeration.
		return fail(c, http.StatusUnauthorized, "Credenciales inválidas")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if !auth.CheckPassword(admin.PasswordHash, payload.Password) {
		return fail(c, http.StatusUnauthorized, "Credenciales inválidas")
	}

	token, err := auth.IssueToken(GetApp(c).Config().Web.Secret, &admin)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]interface{}{
		"token": token,
		"admin": adminInfo{ID: admin.ID, Email: admin.Email, Role: admin.Role},
	})
}

func me(c echo.Context) error {
	token, ok2 := c.Get("user").(*jwt.Token)
	if !ok2 {
		return fail(c, http.StatusUnauthorized, "Token inválido")
	}
	claims, ok2 := token.Claims.(*auth.Claims)
	if !ok2 {
		return fail(c, http.StatusUnauthorized, "Token inválido")
	}
	return ok(c, map[string]interface{}{
		"admin": adminInfo{ID: claims.ID, Email: claims.Email, Role: claims.Role},
	})
}
