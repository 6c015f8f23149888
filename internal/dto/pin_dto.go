package dto

// SetPINRequest defines the data needed to configure the unlock PIN.
type SetPINRequest struct {
	PIN string `json:"pin" binding:"required,min=4,max=12,numeric"`
}

// ChallengeRequest carries a candidate PIN for a strong-auth challenge.
type ChallengeRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// ChallengeResponse reports the three-way challenge outcome.
type ChallengeResponse struct {
	Result string `json:"result"` // granted | denied | unavailable
}
