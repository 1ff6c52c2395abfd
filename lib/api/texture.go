package api

import (
	"fmt"
	"image"
	"image/png"
	"net/http"

	"github.com/fosdem/glsteps/lib/imgload"
)

// handleTexture serves the current texture image as png and accepts a
// replacement in any format imgload decodes.
//
// @Summary	Fetch or replace the texture image
// @Router		/api/texture [get]
// @Router		/api/texture [put]
// @Tags		texture
// @Success	200
// @Failure	400	{string}	string	"The body is not a decodable image"
// @Produce	png
func (a *Api) handleTexture(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		img := a.tutorial.Image()
		if a.flip {
			img = flipped(img)
		}
		w.Header().Set("Content-Type", "image/png")
		err := png.Encode(w, img)
		if err != nil {
			http.Error(w, "Could not png encode the texture", http.StatusInternalServerError)
		}
	case http.MethodPut:
		img, err := imgload.Decode(req.Body, a.flip)
		if err != nil {
			http.Error(w, fmt.Sprintf("not a valid image: %s", err), http.StatusBadRequest)
			return
		}
		a.logger.Info(fmt.Sprintf("Texture was updated with a new image (%dx%d)", img.Rect.Dx(), img.Rect.Dy()))
		a.tutorial.SetImage(img)
		a.writeOk(w)
	default:
		http.Error(w, "Invalid method, only GET and PUT supported", http.StatusMethodNotAllowed)
	}
}

// flipped returns an upright copy; the tutorial's image is shared with the
// render loop and must not change.
func flipped(img *image.NRGBA) *image.NRGBA {
	out := &image.NRGBA{
		Pix:    append([]uint8(nil), img.Pix...),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	imgload.FlipVertical(out)
	return out
}
