package service

import "github.com/shopapi/catalog/internal/domain"

// AttachComments sets each product's Comments to the comments it owns,
// keeping input order. Products without comments keep a nil slice.
func AttachComments(products []domain.Product, comments []domain.Comment) {
	byProduct := groupBy(comments, func(c domain.Comment) string { return c.ProductID })
	for i := range products {
		if cs := byProduct[products[i].ID]; len(cs) > 0 {
			products[i].Comments = cs
		}
	}
}

// AttachImages sets each product's Images and Thumbnail from images.
// Products without images keep both unset.
func AttachImages(products []domain.Product, images []domain.Image) {
	byProduct := groupBy(images, func(img domain.Image) string { return img.ProductID })
	for i := range products {
		if imgs := byProduct[products[i].ID]; len(imgs) > 0 {
			products[i].Images = imgs
			products[i].Thumbnail = PickThumbnail(imgs)
		}
	}
}

// PickThumbnail returns the first image flagged main, else the first image,
// else nil. The result is a copy.
func PickThumbnail(images []domain.Image) *domain.Image {
	if len(images) == 0 {
		return nil
	}
	thumb := images[0]
	for _, img := range images {
		if img.Main {
			thumb = img
			break
		}
	}
	return &thumb
}

func groupBy[T any](items []T, key func(T) string) map[string][]T {
	out := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}
