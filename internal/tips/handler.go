package tips

import (
	"net/http"

	"github.com/saulo-duarte/menteviva-api/internal/config"
)

func List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Categories())
}
