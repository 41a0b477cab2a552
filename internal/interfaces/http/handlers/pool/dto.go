package pool

import "secretsanta/internal/application/pool/usecases"

// LinkMailRequest is the body of the forgot-link and reuse endpoints.
type LinkMailRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r LinkMailRequest) ToForgotCommand() usecases.ForgotManageLinkCommand {
	return usecases.ForgotManageLinkCommand{Email: r.Email}
}

func (r LinkMailRequest) ToReuseCommand() usecases.SendReuseLinksCommand {
	return usecases.SendReuseLinksCommand{Email: r.Email}
}
