// Package export renders submission results as PDF documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/evalai/evalai-backend/internal/domain"
)

// SubmissionReport bundles everything the result document needs. Evaluation
// may describe fewer questions than Answers if data was edited; rendering is
// driven by the evaluation's question list.
type SubmissionReport struct {
	Evaluation domain.Evaluation
	Submission domain.Submission
	UserName   string
	Passed     bool
}

// SubmissionPDF renders the per-question result document for one submission.
func SubmissionPDF(r SubmissionReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(r.Evaluation.Title), "", "L", false)

	pdf.SetFont("Helvetica", "", 11)
	when := time.UnixMilli(r.Submission.Timestamp).Format("02/01/2006 15:04")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Colaborador: %s", r.UserName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Data: %s", when)), "", 1, "L", false, 0, "")

	verdict := "REPROVADO"
	if r.Passed {
		verdict = "APROVADO"
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Resultado: %d%% - %s", r.Submission.Score, verdict)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, q := range r.Evaluation.Questions {
		answer := -1
		if i < len(r.Submission.Answers) {
			answer = r.Submission.Answers[i]
		}
		correct := answer == q.Correct

		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, q.Prompt)), "", "L", false)

		tag := "[INCORRETA]"
		if correct {
			tag = "[CORRETA]"
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s Sua resposta: %s", tag, optionText(q, answer))), "", "L", false)
		if !correct {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Resposta correta: %s", optionText(q, q.Correct))), "", "L", false)
		}
		if q.Rationale != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Justificativa: %s", q.Rationale)), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// optionText resolves an option index to its display text, tolerating the
// unanswered sentinel and out-of-range indices.
func optionText(q domain.Question, idx int) string {
	if idx < 0 || idx >= len(q.Options) {
		return "N/A"
	}
	return fmt.Sprintf("%c) %s", 'A'+idx, q.Options[idx])
}
