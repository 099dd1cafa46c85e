package cocktail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"sync"

	"github.com/nfnt/resize"
)

// ImageGenerator produces one JPEG image for a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// maxImageWidth bounds the data URIs handed to the client. Provider images
// wider than this are downscaled before encoding.
const maxImageWidth = 512

// Illustrator attaches generated images to recipes. A failed image never
// fails anything beyond its own recipe.
type Illustrator struct {
	images ImageGenerator
}

func NewIllustrator(images ImageGenerator) *Illustrator {
	return &Illustrator{images: images}
}

// Illustrate requests one image for the recipe and attaches it as a JPEG data
// URI. On any failure the recipe is returned unchanged and the cause is only
// logged.
func (il *Illustrator) Illustrate(ctx context.Context, r Recipe) Recipe {
	data, err := il.images.GenerateImage(ctx, ImagePrompt(r))
	if err != nil {
		log.Printf("illustration failed for %q: %v", r.Name, err)
		return r
	}
	r.ImageURL = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(shrink(data))
	return r
}

// IllustrateBatch illustrates every recipe concurrently and returns when all
// requests have settled. Output order and length always match the input.
func (il *Illustrator) IllustrateBatch(ctx context.Context, recipes []Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	var wg sync.WaitGroup
	for i, r := range recipes {
		wg.Add(1)
		go func(i int, r Recipe) {
			defer wg.Done()
			out[i] = il.Illustrate(ctx, r)
		}(i, r)
	}
	wg.Wait()
	return out
}

// ImagePrompt builds the image-generation prompt for one recipe.
func ImagePrompt(r Recipe) string {
	garnish := ""
	if r.Garnish != "" {
		garnish = fmt.Sprintf(", garnished with %s", r.Garnish)
	}
	return fmt.Sprintf("A professional studio photograph of a cocktail called %q served in appropriate glassware%s. "+
		"Square composition, soft lighting, shallow depth of field, photorealistic.", r.Name, garnish)
}

// shrink downscales oversized images to maxImageWidth. If the payload cannot
// be decoded or re-encoded it is passed through untouched, so this step can
// never cost a recipe its image.
func shrink(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return data
	}
	img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return data
	}
	return buf.Bytes()
}
