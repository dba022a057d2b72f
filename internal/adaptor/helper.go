package adaptor

import (
	"encoding/json"
	"net/http"

	"filmorate/pkg/errs"
	"filmorate/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies; films and users are small.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.Invalid("body", "Invalid request body")
	}
	return nil
}

// pathID reads an integer id from the chi route.
func pathID(r *http.Request, name string) (int64, error) {
	return utils.ParseID(name, chi.URLParam(r, name))
}

func pathIDs(r *http.Request, first, second string) (int64, int64, error) {
	a, err := pathID(r, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := pathID(r, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
