package tryon

import (
	"fmt"
	"strings"
)

// ComposePrompt renders the composition instruction for one subject image
// followed by n garment images. It is a pure function of n and is the single
// source of the instruction text for every entry point.
func ComposePrompt(n int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You will be given %d images.\n\n", n+1)

	b.WriteString("IMAGE 1 (PRIMARY SUBJECT / IDENTITY REFERENCE — LOCKED):\n" +
		"This image contains the real person who must appear in the final output.\n" +
		"Treat Image 1 as IDENTITY-LOCKED and BODY-LOCKED.\n" +
		"Preserve exactly: face, skin tone, body shape, body proportions, hair, hands, legs, posture, and pose.\n" +
		"Do NOT change the person's identity or physical appearance in any way.\n" +
		"Do NOT change camera angle, framing, or background unless absolutely necessary for realism.\n\n")

	fmt.Fprintf(&b, "IMAGES 2 THROUGH %d (GARMENT SOURCES ONLY — NOT SUBJECTS):\n", n+1)
	b.WriteString("Each of these images contains one clothing item or accessory to use (e.g., top, pants, shoes, jacket, hat, bag).\n" +
		"These images may include flat-lays, hanger shots, or clothing worn by placeholder models.\n" +
		"IMPORTANT: If a person/model appears in any of these images, they are ONLY a mannequin/placeholder.\n" +
		"Extract ONLY the clothing/accessory item(s). Ignore and discard the placeholder person's face, skin, hair, body shape, pose, and all body parts.\n" +
		"Do NOT transfer any human attributes from Images 2..N into the final image.\n\n")

	b.WriteString("TASK:\n" +
		"Dress the person from Image 1 in ALL clothing/accessory items extracted from Images 2..N, combining them into one cohesive outfit.\n" +
		"The final image must be a single photorealistic photo of the ORIGINAL person from Image 1 wearing the extracted outfit.\n\n")

	b.WriteString("STRICT RULES (MUST FOLLOW):\n" +
		"1) Identity Preservation (Highest Priority): Image 1 person is immutable except for clothing changes.\n" +
		"2) Garment-Only Extraction: Use only garments/accessories from Images 2..N; never use any body/face/hair features from those images.\n" +
		"3) No Placeholder Transfer: Do not copy or blend placeholder model pose, limbs, skin tone, body shape, or facial structure.\n" +
		"4) Fit & Drape Realistically: Adjust garments to the Image 1 person's exact body proportions and pose.\n" +
		"5) Preserve Garment Details: Keep original fabric texture, pattern, color, stitching, logos, trims, and silhouette.\n" +
		"6) Correct Layering: Place items in realistic order (e.g., shirt under jacket, shoes on feet, hat on head).\n" +
		"7) Lighting Consistency: Match the lighting/shadows of Image 1.\n" +
		"8) Background Preservation: Keep Image 1 background unless minor adjustments are needed for realism.\n" +
		"9) No Hallucinated Body Changes: Do not slim, widen, reshape, re-pose, beautify, age, or otherwise alter the Image 1 person.\n" +
		"10) If any garment image is ambiguous or occluded, prioritize preserving the Image 1 person unchanged and apply only the clearly visible garment details.\n\n")

	b.WriteString("OUTPUT:\n" +
		"Return one photorealistic image of the Image 1 person wearing the complete outfit assembled from Images 2..N.")

	return b.String()
}
