// Package services implements the business logic of the evaluation platform:
// authentication, evaluation visibility, scoring, aggregation reporting, and
// the lifecycles of the seven record collections. This file centralizes
// service-level error values so they can be consistently returned by service
// methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrInvalidCredentials is returned when neither the master identity nor
	// any stored user matches the supplied username/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation flags a missing or malformed required field. Callers wrap
	// it with the field detail.
	ErrValidation = errors.New("validation failed")

	// ErrCompanyNotFound indicates the referenced company does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrKnowledgeNotFound indicates the referenced knowledge item does not
	// exist (possibly deleted after the evaluation draft began).
	ErrKnowledgeNotFound = errors.New("knowledge item not found")

	// ErrEvaluationNotFound indicates the referenced evaluation does not exist.
	ErrEvaluationNotFound = errors.New("evaluation not found")

	// ErrSubmissionNotFound indicates the referenced submission does not exist.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNoQuestions is returned when a publish is attempted with an empty
	// generated-question list.
	ErrNoQuestions = errors.New("evaluation has no questions")

	// ErrBadQuestion is returned when a question violates the five-options /
	// correct-index invariant.
	ErrBadQuestion = errors.New("question must have 5 options and a correct index 0-4")

	// ErrAnswerCount is returned when the submitted answer set does not have
	// exactly one slot per question.
	ErrAnswerCount = errors.New("answer count does not match question count")

	// ErrUnanswered is returned when an answer slot is still the -1 sentinel
	// (or otherwise out of range) at finish time.
	ErrUnanswered = errors.New("every question must be answered")

	// ErrGeneration wraps failures of the generative-AI collaborator. The
	// draft is discarded and nothing is persisted.
	ErrGeneration = errors.New("question generation failed")

	// ErrExtraction wraps failures of the document text-extraction
	// collaborator. No knowledge item is stored.
	ErrExtraction = errors.New("text extraction failed")
)
