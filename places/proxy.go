package places

import (
	"io"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// ImageProxy streams a place photo through the server so the Places key is
// never exposed to browsers.
func ImageProxy(client *Client) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ref := ps.ByName("ref")
		if ref == "" {
			http.Error(w, "Missing photo reference", http.StatusBadRequest)
			return
		}

		resp, err := client.FetchPhoto(r.Context(), ref)
		if err != nil {
			log.Printf("image proxy error: %v", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			http.Error(w, "Failed to fetch image", resp.StatusCode)
			return
		}

		w.Header().Set("Content-Type", resp.Header.Get("Content-Type"))
		if _, err := io.Copy(w, resp.Body); err != nil {
			log.Printf("image proxy copy: %v", err)
		}
	}
}
