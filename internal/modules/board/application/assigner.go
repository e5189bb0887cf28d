package application

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
)

// SMSDispatcher sends the assignment SMS through the external function
// endpoint. Implementations must treat delivery as best effort: a failed
// send is reported, never retried here.
type SMSDispatcher interface {
	Send(ctx context.Context, req domain.SMSRequest) error
}

// Notifier is the board's toast channel.
type Notifier interface {
	Success(title, body string)
	Error(title, body string)
	Info(title, body string)
	Warning(title, body string)
}

// Assigner orchestrates the assignment flow: the assignment write, the
// optional SMS side effect, and the toast describing the outcome. The
// write and the side effect are independent steps; a failed SMS never
// rolls back the assignment, it only changes the toast text.
type Assigner struct {
	store    *Store
	sms      SMSDispatcher
	notifier Notifier
}

func NewAssigner(store *Store, sms SMSDispatcher, notifier Notifier) *Assigner {
	return &Assigner{store: store, sms: sms, notifier: notifier}
}

// Assign hands the message to memberName. The snapshot entity is captured
// before the write because the reload inside AssignMessage replaces it.
func (a *Assigner) Assign(ctx context.Context, messageID uuid.UUID, memberName string) error {
	message, _ := a.store.FindMessage(messageID)
	member, _ := a.store.FindMember(memberName)

	if err := a.store.AssignMessage(ctx, messageID, memberName); err != nil {
		a.notifier.Error(
			"Erreur d'assignation",
			"Impossible d'assigner ce client. Veuillez réessayer.",
		)
		return err
	}

	if !message.IsClient() {
		a.notifier.Success(
			"📤 Message envoyé",
			fmt.Sprintf("Le message a été envoyé à %s ! Il va disparaître du tableau principal.", memberName),
		)
		return nil
	}

	if member.PhoneNumber == nil || *member.PhoneNumber == "" {
		a.notifier.Success(
			"🎯 Client assigné",
			fmt.Sprintf("%s s'occupe maintenant de ce client ! (Pas de numéro de téléphone configuré pour le SMS). Le message va disparaître du tableau principal.", memberName),
		)
		return nil
	}

	req := domain.SMSRequest{
		MemberName:  memberName,
		PhoneNumber: *member.PhoneNumber,
		ClientName:  valueOr(message.ClientName, "Client non spécifié"),
		DealerName:  valueOr(message.DealerName, "Dealer non spécifié"),
	}
	if err := a.sms.Send(ctx, req); err != nil {
		log.Printf("board: SMS dispatch failed for %s: %v", memberName, err)
		a.notifier.Success(
			"🎯 Client assigné",
			fmt.Sprintf("%s s'occupe maintenant de ce client ! (SMS non envoyé - vérifiez la configuration). Le message va disparaître du tableau principal.", memberName),
		)
		return nil
	}

	a.notifier.Success(
		"🎯📱 Client assigné avec SMS",
		fmt.Sprintf("%s s'occupe maintenant de ce client ! Un SMS a été envoyé avec les détails. Le message va disparaître du tableau principal.", memberName),
	)
	return nil
}

// Unassign returns the message to the board.
func (a *Assigner) Unassign(ctx context.Context, messageID uuid.UUID) error {
	if err := a.store.UnassignMessage(ctx, messageID); err != nil {
		a.notifier.Error(
			"Erreur de désassignation",
			"Impossible de remettre ce message au tableau. Veuillez réessayer.",
		)
		return err
	}
	a.notifier.Info(
		"Message remis au tableau",
		"Le message est de nouveau visible sur le tableau principal.",
	)
	return nil
}

func valueOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
