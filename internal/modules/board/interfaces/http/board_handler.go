package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wxpress/salesboard/internal/modules/board/application"
	"github.com/wxpress/salesboard/internal/modules/board/domain"
	report "github.com/wxpress/salesboard/internal/modules/report/application"
)

const emptyTitlePlaceholder = "Message vide"

type BoardHandler struct {
	store    *application.Store
	assigner *application.Assigner
	notifier application.Notifier
	archive  *report.ArchiveService
}

func NewBoardHandler(store *application.Store, assigner *application.Assigner, notifier application.Notifier, archive *report.ArchiveService) *BoardHandler {
	return &BoardHandler{store: store, assigner: assigner, notifier: notifier, archive: archive}
}

// Board serves the wall display snapshot: banner, counters, and the
// unassigned messages grouped by priority.
func (h *BoardHandler) Board(w http.ResponseWriter, r *http.Request) {
	messages := h.store.Messages()
	members := h.store.TeamMembers()
	alert := h.store.PriorityAlert()

	groups := domain.GroupByPriority(domain.Unassigned(messages))
	respGroups := make(map[domain.Priority][]MessageResponse, len(groups))
	for p, g := range groups {
		respGroups[p] = toMessageResponses(g)
	}
	summary := domain.Summarize(messages, members)

	writeJSON(w, BoardResponse{
		Alert:   PriorityAlertDTO{Active: alert.Active, Message: alert.Message, Color: alert.Color},
		Summary: SummaryResponse(summary),
		Groups:  respGroups,
	})
}

func (h *BoardHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"data": toMessageResponses(h.store.Messages())})
}

func (h *BoardHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if !req.Priority.IsValid() {
		http.Error(w, `{"error": "invalid priority level"}`, http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = emptyTitlePlaceholder
	}

	created, err := h.store.AddMessage(r.Context(), domain.MessageDraft{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Sender:      req.Sender,
		IsFlashing:  req.IsFlashing,
		ClientName:  req.ClientName,
		DealerName:  req.DealerName,
	})
	if err != nil {
		log.Printf("board: creating message failed: %v", err)
		h.notifier.Error("Erreur de publication", "Impossible de publier le message. Veuillez réessayer.")
		http.Error(w, `{"error": "failed to create message"}`, http.StatusInternalServerError)
		return
	}

	if req.Banner {
		color := req.BannerColor
		if color != domain.AlertColorGreen {
			color = domain.AlertColorRed
		}
		alert := domain.PriorityAlert{Active: true, Message: created.Title, Color: color}
		if err := h.store.UpdatePriorityAlert(r.Context(), alert); err != nil {
			log.Printf("board: banner upsert failed: %v", err)
			h.notifier.Error("Erreur de bannière", "Le message est publié mais la bannière prioritaire n'a pas pu être activée.")
		} else {
			h.notifier.Warning(
				"🔊 Alerte prioritaire activée",
				fmt.Sprintf("Le message \"%s\" est maintenant affiché en bannière prioritaire.", created.Title),
			)
		}
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, toMessageResponse(*created))
}

func (h *BoardHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid message id"}`, http.StatusBadRequest)
		return
	}
	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if !req.Priority.IsValid() {
		http.Error(w, `{"error": "invalid priority level"}`, http.StatusBadRequest)
		return
	}

	current, ok := h.store.FindMessage(id)
	if !ok {
		http.Error(w, `{"error": "message not found"}`, http.StatusNotFound)
		return
	}
	current.Title = req.Title
	current.Description = req.Description
	current.Priority = req.Priority
	current.Sender = req.Sender
	current.IsFlashing = req.IsFlashing
	current.ClientName = req.ClientName
	current.DealerName = req.DealerName

	if err := h.store.UpdateMessage(r.Context(), current); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			http.Error(w, `{"error": "message not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("board: updating message failed: %v", err)
		h.notifier.Error("Erreur de modification", "Impossible de modifier le message. Veuillez réessayer.")
		http.Error(w, `{"error": "failed to update message"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, toMessageResponse(current))
}

func (h *BoardHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid message id"}`, http.StatusBadRequest)
		return
	}
	if err := h.store.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			http.Error(w, `{"error": "message not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("board: deleting message failed: %v", err)
		h.notifier.Error("Erreur de suppression", "Impossible de supprimer le message. Veuillez réessayer.")
		http.Error(w, `{"error": "failed to delete message"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) ClearAllMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAllMessages(r.Context()); err != nil {
		log.Printf("board: clearing messages failed: %v", err)
		h.notifier.Error("Erreur de nettoyage", "Impossible de vider le tableau. Veuillez réessayer.")
		http.Error(w, `{"error": "failed to clear messages"}`, http.StatusInternalServerError)
		return
	}
	h.notifier.Info("Tableau vidé", "Tous les messages ont été supprimés et la bannière réinitialisée.")
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) AssignMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid message id"}`, http.StatusBadRequest)
		return
	}
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MemberName == "" {
		http.Error(w, `{"error": "memberName is required"}`, http.StatusBadRequest)
		return
	}

	if err := h.assigner.Assign(r.Context(), id, req.MemberName); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			http.Error(w, `{"error": "message not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("board: assignment failed: %v", err)
		http.Error(w, `{"error": "failed to assign message"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) UnassignMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid message id"}`, http.StatusBadRequest)
		return
	}
	if err := h.assigner.Unassign(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMessageNotFound) {
			http.Error(w, `{"error": "message not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("board: unassignment failed: %v", err)
		http.Error(w, `{"error": "failed to unassign message"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkRead records a local read receipt. No remote write happens here.
func (h *BoardHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error": "invalid message id"}`, http.StatusBadRequest)
		return
	}
	var req MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReaderID == "" {
		http.Error(w, `{"error": "readerId is required"}`, http.StatusBadRequest)
		return
	}
	h.store.MarkAsRead(id, req.ReaderID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"data": toTeamMemberResponses(h.store.TeamMembers())})
}

func (h *BoardHandler) GetPriorityAlert(w http.ResponseWriter, r *http.Request) {
	alert := h.store.PriorityAlert()
	writeJSON(w, PriorityAlertDTO{Active: alert.Active, Message: alert.Message, Color: alert.Color})
}

func (h *BoardHandler) PutPriorityAlert(w http.ResponseWriter, r *http.Request) {
	var req PriorityAlertDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Color != domain.AlertColorRed && req.Color != domain.AlertColorGreen {
		http.Error(w, `{"error": "invalid alert color"}`, http.StatusBadRequest)
		return
	}
	alert := domain.PriorityAlert{Active: req.Active, Message: req.Message, Color: req.Color}
	if err := h.store.UpdatePriorityAlert(r.Context(), alert); err != nil {
		log.Printf("board: alert upsert failed: %v", err)
		h.notifier.Error("Erreur de bannière", "Impossible de mettre à jour la bannière prioritaire.")
		http.Error(w, `{"error": "failed to update priority alert"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, req)
}

// AdminReport serves the filtered admin view with per-member stats.
func (h *BoardHandler) AdminReport(w http.ResponseWriter, r *http.Request) {
	filter := adminFilterFromQuery(r)
	messages := h.store.Messages()
	members := h.store.TeamMembers()

	filtered := domain.Filter(messages, filter)
	stats := domain.MemberStats(members, messages)
	statsResp := make([]MemberStatResponse, 0, len(stats))
	for _, s := range stats {
		statsResp = append(statsResp, MemberStatResponse{
			Name:     s.Name,
			Count:    s.Count,
			Messages: toMessageResponses(s.Messages),
		})
	}

	writeJSON(w, map[string]interface{}{
		"messages": toMessageResponses(filtered),
		"stats":    statsResp,
		"summary":  SummaryResponse(domain.Summarize(messages, members)),
	})
}

// ExportReport streams the assignment report as a CSV download, applying
// the same filters as the admin view. With archive=true a copy is also
// filed in the report archive; an archive failure never fails the
// download.
func (h *BoardHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	filter := adminFilterFromQuery(r)
	filtered := domain.Filter(h.store.Messages(), filter)

	now := time.Now()
	csv := application.ExportCSV(filtered)
	filename := application.ReportFilename(now)

	if r.URL.Query().Get("archive") == "true" && h.archive != nil {
		if location, err := h.archive.Archive(r.Context(), filename, csv, now); err != nil {
			log.Printf("board: archiving report failed: %v", err)
		} else {
			log.Printf("board: report archived at %s", location)
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(csv)); err != nil {
		log.Printf("board: writing report: %v", err)
	}
}

func adminFilterFromQuery(r *http.Request) domain.AdminFilter {
	status := domain.StatusFilter(r.URL.Query().Get("status"))
	if status != domain.StatusAssigned && status != domain.StatusUnassigned {
		status = domain.StatusAll
	}
	return domain.AdminFilter{
		Status: status,
		Member: r.URL.Query().Get("member"),
		Search: r.URL.Query().Get("search"),
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("board: encode error: %v", err)
	}
}
