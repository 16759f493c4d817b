package adminapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/storage"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerImageRoutes() {
	webserver.ApiPOST("/images/sign-upload", signUpload)
	webserver.ApiDELETE("/images", deleteImage)
	// The PUT target named by the signed URL. The token query parameter
	// is the credential, so this stays outside the bearer middleware.
	webserver.PubPUT("/uploads/:path", putUpload)
}

type signUploadPayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

func signUpload(c echo.Context) error {
	var payload signUploadPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Filename requerido")
	}
	if strings.TrimSpace(payload.Filename) == "" {
		return fail(c, http.StatusBadRequest, "Filename requerido")
	}

	signed, err := imageStore(c).SignUpload(payload.Filename, payload.ContentType)
	if errors.Is(err, storage.ErrUnsupportedType) {
		return fail(c, http.StatusBadRequest, "Tipo de archivo no permitido")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, signed)
}

type deleteImagePayload struct {
	Path string `json:"path"`
}

func deleteImage(c echo.Context) error {
	var payload deleteImagePayload
	if err := c.Bind(&payload); err != nil || strings.TrimSpace(payload.Path) == "" {
		return fail(c, http.StatusBadRequest, "Path requerido")
	}
	if err := imageStore(c).Remove(payload.Path); err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]bool{"success": true})
}

func putUpload(c echo.Context) error {
	objectPath := c.Param("path")
	token := c.QueryParam("token")
	store := imageStore(c)
	if !store.VerifyToken(objectPath, token) {
		return fail(c, http.StatusUnauthorized, "Token inválido")
	}
	if err := store.Put(objectPath, token, c.Request().Body); err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]string{"path": objectPath, "publicUrl": store.PublicURL(objectPath)})
}
