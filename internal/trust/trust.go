// Package trust derives a student's 0–100 trust score from their KYC and
// proof-of-use evidence. The score carries no hidden state: it can be
// recomputed from the store at any time and the stored value is simply the
// last computation, so concurrent recomputes are safe to leave unordered.
package trust

import (
	"errors"

	"github.com/educhain/educhain-api/internal/repository"
)

// Scoring policy. These are fixed domain constants agreed with the program
// owners, not tunables.
const (
	baseScore = 10

	// Having any KYC document on file is worth kycExistsBonus. A verified
	// document adds kycVerifiedBonus on top; one still pending review adds
	// kycPendingBonus. A rejected document keeps only the existence bonus;
	// whether rejection should instead subtract is an open product
	// question, and withholding is the documented behavior until decided.
	kycExistsBonus   = 30
	kycVerifiedBonus = 30
	kycPendingBonus  = 10

	// Each proof submission adds proofPoints, capped at proofBonusCap, so
	// only the first six proofs move the score.
	proofPoints   = 5
	proofBonusCap = 30

	maxScore = 100
)

var ErrStudentNotFound = errors.New("student not found")

// Score computes the trust score from the evidence facts alone. It is a
// pure function of its arguments.
func Score(hasKyc bool, kycStatus string, proofCount int) float64 {
	score := float64(baseScore)

	if hasKyc {
		score += kycExistsBonus

		switch kycStatus {
		case repository.KycStatusVerified:
			score += kycVerifiedBonus
		case repository.KycStatusPending:
			score += kycPendingBonus
		}
	}

	proofBonus := float64(proofCount * proofPoints)
	if proofBonus > proofBonusCap {
		proofBonus = proofBonusCap
	}
	score += proofBonus

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return score
}

// Engine reads a student's current evidence, scores it, and persists the
// result. The read-then-write sequence is not transactional: two concurrent
// recomputes for the same student may interleave and the last write wins,
// which is acceptable because every recompute derives the same value from
// the same evidence.
type Engine struct {
	StudentRepo repository.StudentRepository
	KycRepo     repository.KycRepository
	ProofRepo   repository.ProofRepository
}

func New(engine *Engine) *Engine {
	return &Engine{
		StudentRepo: engine.StudentRepo,
		KycRepo:     engine.KycRepo,
		ProofRepo:   engine.ProofRepo,
	}
}

// Recompute derives the student's score from their current KYC and proof
// records, writes it back onto the student row, and returns it. It fails
// with ErrStudentNotFound if the id does not resolve; missing KYC or proofs
// are not errors, they just contribute nothing.
func (e *Engine) Recompute(studentID string) (float64, error) {
	_, found, err := e.StudentRepo.GetOne(studentID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrStudentNotFound
	}

	kycDoc, hasKyc, err := e.KycRepo.FindByStudent(studentID)
	if err != nil {
		return 0, err
	}

	proofCount, err := e.ProofRepo.CountByStudent(studentID)
	if err != nil {
		return 0, err
	}

	var kycStatus string
	if hasKyc {
		kycStatus = kycDoc.Status
	}

	score := Score(hasKyc, kycStatus, proofCount)

	err = e.StudentRepo.UpdateTrustScore(studentID, score)
	if err != nil {
		return 0, err
	}

	return score, nil
}
