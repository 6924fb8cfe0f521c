package tryon

// defaultImageMIME is assumed when an image part arrives without a declared
// mime type.
const defaultImageMIME = "image/png"

// Disambiguate walks the response parts in array order and extracts at most
// one image and one text note. When the model returns multiple parts of the
// same kind, the last one wins; the upstream contract gives no ordering
// semantics beyond array order, so this is a deliberate tie-break. A
// response with no image part yields a *NoImageError carrying the note.
func Disambiguate(resp *ModelResponse) (*InlineImage, string, error) {
	var image *InlineImage
	var note string

	if resp != nil {
		for _, part := range resp.Parts {
			switch {
			case part.Inline != nil && len(part.Inline.Data) > 0:
				image = part.Inline
			case part.Text != "":
				note = part.Text
			}
		}
	}

	if image == nil {
		return nil, note, &NoImageError{Note: note}
	}
	if image.MIMEType == "" {
		image = &InlineImage{Data: image.Data, MIMEType: defaultImageMIME}
	}
	return image, note, nil
}
