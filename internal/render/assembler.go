package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"

	"codeberg.org/go-pdf/fpdf"

	"lanyard/internal/badge/models"
	"lanyard/internal/render/assets"
	"lanyard/internal/render/placeholder"
	dErrors "lanyard/pkg/domain-errors"
)

// Input is one assembly request: a resolved template plus the substitution
// context for the attendee it is being rendered for.
type Input struct {
	Template *models.Template
	Tokens   placeholder.Context
}

// Result is the finished document. OmittedElements lists the visuals dropped
// by soft asset failures so callers can assert on partial success instead of
// digging through logs.
type Result struct {
	PDF             []byte
	OmittedElements []string
}

// Assembler builds one finished page per request. It owns page creation,
// background painting, element ordering, and serialization; per-element
// painting is delegated to the ElementRenderer.
type Assembler struct {
	elements *ElementRenderer
	fetcher  assets.ImageFetcher
	logger   *slog.Logger
}

// NewAssembler constructs an Assembler sharing one fetcher between element
// images and template backgrounds.
func NewAssembler(fetcher assets.ImageFetcher, logger *slog.Logger) *Assembler {
	return &Assembler{
		elements: NewElementRenderer(fetcher, logger),
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Assemble produces the document bytes. Only an internal PDF failure is
// fatal; asset problems surface through Result.OmittedElements.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*Result, error) {
	tpl := in.Template
	page := tpl.PageSize()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: page.W, Ht: page.H},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	result := &Result{}
	a.paintBackground(ctx, pdf, tpl, page, result)

	pc := &paintContext{pdf: pdf, page: page, tokens: in.Tokens}
	for i, el := range visibleByZIndex(tpl.Elements) {
		if err := a.elements.Paint(ctx, pc, i, el); err != nil {
			label := fmt.Sprintf("%s[%d]", el.Kind, i)
			result.OmittedElements = append(result.OmittedElements, label)
			a.logger.WarnContext(ctx, "element omitted from badge",
				"template_id", tpl.ID,
				"element", label,
				"error", err,
			)
		}
	}

	if pdf.Err() {
		return nil, dErrors.Wrap(pdf.Error(), dErrors.CodeInternal, "badge assembly failed")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "badge serialization failed")
	}
	result.PDF = buf.Bytes()
	return result, nil
}

// paintBackground stretches the fetched background image across the page,
// falling back to a solid fill of the declared color (default opaque white).
func (a *Assembler) paintBackground(ctx context.Context, pdf *fpdf.Fpdf, tpl *models.Template, page models.PageSize, result *Result) {
	if tpl.BackgroundImageURL != "" {
		img, err := a.fetcher.Fetch(ctx, tpl.BackgroundImageURL)
		if err == nil {
			opts := fpdf.ImageOptions{ImageType: img.Format}
			pdf.RegisterImageOptionsReader("background", opts, bytes.NewReader(img.Bytes))
			if !pdf.Err() {
				pdf.ImageOptions("background", 0, 0, page.W, page.H, false, opts, 0, "")
				return
			}
			err = pdf.Error()
			pdf.ClearError()
		}
		result.OmittedElements = append(result.OmittedElements, "background")
		a.logger.WarnContext(ctx, "background image omitted from badge",
			"template_id", tpl.ID,
			"url", tpl.BackgroundImageURL,
			"error", err,
		)
	}

	red, green, blue := parseHexColor(tpl.BackgroundColor, 255, 255, 255)
	pdf.SetFillColor(red, green, blue)
	pdf.Rect(0, 0, page.W, page.H, "F")
}

// visibleByZIndex filters invisible elements and orders the rest by z-index
// ascending. The sort is stable so z ties keep their authored order.
func visibleByZIndex(elements []models.Element) []*models.Element {
	out := make([]*models.Element, 0, len(elements))
	for i := range elements {
		if elements[i].Visible {
			out = append(out, &elements[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}
