package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/internal/templates"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
)

// Handler wires the document store, persistence, templates, editors and
// exporters to the HTTP surface. Section editors are long-lived: an
// invalid draft stays held between requests, exactly as in the form
// wizard.
type Handler struct {
	log      *logger.Logger
	store    *store.Store
	storage  *repository.Storage
	registry *templates.Registry
	selector *templates.Selector
	pdf      *export.PDFExporter

	personal       *usecase.PersonalDetailsEditor
	summary        *usecase.SummaryEditor
	skills         *usecase.SkillsEditor
	experience     *usecase.ExperienceEditor
	certifications *usecase.CertificationsEditor
	education      *usecase.EducationEditor
}

func NewHandler(
	log *logger.Logger,
	docStore *store.Store,
	storage *repository.Storage,
	registry *templates.Registry,
	selector *templates.Selector,
	pdf *export.PDFExporter,
) *Handler {
	h := &Handler{
		log:      log,
		store:    docStore,
		storage:  storage,
		registry: registry,
		selector: selector,
		pdf:      pdf,

		personal:       usecase.NewPersonalDetailsEditor(docStore),
		summary:        usecase.NewSummaryEditor(docStore),
		skills:         usecase.NewSkillsEditor(docStore),
		experience:     usecase.NewExperienceEditor(docStore),
		certifications: usecase.NewCertificationsEditor(docStore),
		education:      usecase.NewEducationEditor(docStore),
	}
	h.wireAutoSave()
	return h
}

// wireAutoSave persists every published document together with the
// active template. Documents without at least a name and profession are
// never written, so a reset leaves durable state cleared and a barely
// started form never lands on disk.
func (h *Handler) wireAutoSave() {
	h.store.Subscribe(func(doc model.ResumeDocument) {
		if !doc.HasMinimalData() {
			return
		}
		if err := h.storage.SaveCurrent(doc, h.selector.Current()); err != nil {
			h.log.Warn("autosave: persisting current document failed", "error", err)
		}
	})
	h.selector.Subscribe(func(id string) {
		doc := h.store.Current()
		if !doc.HasMinimalData() {
			return
		}
		if err := h.storage.SaveCurrent(doc, id); err != nil {
			h.log.Warn("autosave: persisting template selection failed", "error", err)
		}
	})
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Get("/resume/status", h.GetResumeStatus)
	app.Post("/resume/reset", h.ResetResume)
	app.Post("/resume/import", h.ImportResume)

	app.Put("/resume/personal-details", h.UpdatePersonalDetails)
	app.Put("/resume/summary", h.UpdateSummary)
	app.Put("/resume/skills", h.UpdateSkills)
	app.Put("/resume/experience", h.UpdateExperience)
	app.Put("/resume/certifications", h.UpdateCertifications)
	app.Put("/resume/education", h.UpdateEducation)

	app.Get("/templates", h.ListTemplates)
	app.Get("/templates/selected", h.GetSelectedTemplate)
	app.Put("/templates/selected", h.SelectTemplate)

	app.Get("/saves", h.ListSaves)
	app.Get("/saves/recent", h.ListRecentSaves)
	app.Post("/saves", h.SaveNamed)
	app.Get("/saves/:id", h.GetSave)
	app.Delete("/saves/:id", h.DeleteSave)
	app.Post("/saves/:id/restore", h.RestoreSave)

	app.Get("/resume/preview", h.PreviewResume)
	app.Post("/export/pdf", h.ExportPDF)
	app.Post("/export/docx", h.ExportDOCX)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.store.Current())
}

// GetResumeStatus reports whether an in-progress document has been
// auto-saved to durable storage.
func (h *Handler) GetResumeStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"hasUnsavedData": h.storage.HasUnsavedData()})
}

func (h *Handler) ResetResume(c *fiber.Ctx) error {
	if err := h.store.Reset(); err != nil {
		h.log.Error("reset: clearing durable state failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "reset failed"})
	}
	return c.JSON(h.store.Current())
}

// ImportResume replaces the whole document at once after validating it
// against the resume schema.
func (h *Handler) ImportResume(c *fiber.Ctx) error {
	var doc model.ResumeDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.Validate(doc); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.Load(doc)
	return c.JSON(h.store.Current())
}

// respondEditorResult renders an editor outcome: field errors keep the
// draft local and come back as 422; success returns the new document.
func (h *Handler) respondEditorResult(c *fiber.Ctx, err error) error {
	if err != nil {
		var fe usecase.FieldErrors
		if errors.As(err, &fe) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": fe})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.store.Current())
}

func (h *Handler) UpdatePersonalDetails(c *fiber.Ctx) error {
	var draft usecase.PersonalDetailsDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.personal.Update(draft))
}

func (h *Handler) UpdateSummary(c *fiber.Ctx) error {
	var draft usecase.SummaryDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.summary.Update(draft))
}

func (h *Handler) UpdateSkills(c *fiber.Ctx) error {
	var draft []usecase.SkillCategoryDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.skills.Update(draft))
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var draft []usecase.ExperienceEntryDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.experience.Update(draft))
}

func (h *Handler) UpdateCertifications(c *fiber.Ctx) error {
	var draft []usecase.CertificationDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.certifications.Update(draft))
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var draft []usecase.EducationEntryDraft
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.respondEditorResult(c, h.education.Update(draft))
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.registry.All())
}

func (h *Handler) GetSelectedTemplate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"id": h.selector.Current()})
}

type selectTemplateReq struct {
	ID string `json:"id"`
}

func (h *Handler) SelectTemplate(c *fiber.Ctx) error {
	var req selectTemplateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if _, ok := h.registry.ByID(req.ID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "template not found"})
	}
	h.selector.Set(req.ID)
	return c.JSON(fiber.Map{"id": req.ID})
}

func (h *Handler) ListSaves(c *fiber.Ctx) error {
	return c.JSON(h.storage.ListAll())
}

func (h *Handler) ListRecentSaves(c *fiber.Ctx) error {
	return c.JSON(h.storage.ListRecent(5))
}

type saveNamedReq struct {
	Name string `json:"name"`
}

func (h *Handler) SaveNamed(c *fiber.Ctx) error {
	var req saveNamedReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	doc := h.store.Current()
	if !doc.HasMinimalData() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "please fill in your name and profession before saving",
		})
	}

	id, err := h.storage.SaveNamed(req.Name, doc, h.selector.Current())
	if err != nil {
		h.log.Error("save: writing named snapshot failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *Handler) GetSave(c *fiber.Ctx) error {
	sr, ok := h.storage.LoadByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "save not found"})
	}
	return c.JSON(sr)
}

func (h *Handler) DeleteSave(c *fiber.Ctx) error {
	if err := h.storage.DeleteByID(c.Params("id")); err != nil {
		h.log.Error("delete: rewriting save list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete failed"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RestoreSave loads a named snapshot into the live store and reselects
// the template that was active at save time.
func (h *Handler) RestoreSave(c *fiber.Ctx) error {
	sr, ok := h.storage.LoadByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "save not found"})
	}
	if err := model.Validate(sr.Data); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.Load(sr.Data)
	if _, ok := h.registry.ByID(sr.Template); ok {
		h.selector.Set(sr.Template)
	}
	return c.JSON(h.store.Current())
}

func (h *Handler) selectedTemplate() templates.Template {
	if tpl, ok := h.registry.ByID(h.selector.Current()); ok {
		return tpl
	}
	return h.registry.Default()
}

// PreviewResume serves the same HTML the PDF pipeline prints, styled
// with the active template.
func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	html, err := export.RenderView(h.store.Current(), h.selectedTemplate())
	if err != nil {
		h.log.Error("preview: render failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	filename := c.Query("filename", export.DefaultPDFFilename)

	b, err := h.pdf.Export(c.Context(), h.store.Current(), h.selectedTemplate())
	if err != nil {
		h.log.Error("export: pdf failed", "error", err)
		status := fiber.StatusInternalServerError
		if errors.Is(err, infrastructure.ErrViewNotFound) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, export.PDFContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}

func (h *Handler) ExportDOCX(c *fiber.Ctx) error {
	filename := c.Query("filename", export.DefaultDOCXFilename)

	b, err := export.ExportDOCX(h.store.Current())
	if err != nil {
		h.log.Error("export: docx failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, export.DOCXContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}
