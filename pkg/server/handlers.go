package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-barcodeform/pkg/config"
	"github.com/goliatone/go-barcodeform/pkg/model"
	"github.com/goliatone/go-barcodeform/pkg/orchestrator"
	"github.com/goliatone/go-barcodeform/pkg/render"
	"github.com/goliatone/go-barcodeform/pkg/submission"
)

// ErrUnsupportedUpload is reported when the uploaded file is not YAML.
var ErrUnsupportedUpload = errors.New("server: upload must be a .yaml or .yml file")

const uploadField = "file"

func (s *Server) formHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			s.renderForm(w, r, model.FormModel{}, http.StatusOK, render.RenderOptions{})
		case http.MethodPost:
			s.handlePost(w, r)
		default:
			w.Header().Set("Allow", "GET, HEAD, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+(64<<10))
	if err := r.ParseMultipartForm(s.maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	if file, header := uploadedFile(r); file != nil {
		defer file.Close()
		s.handleUpload(w, r, file, header)
		return
	}

	form := submission.Parse(r.PostForm)
	action := submission.ParseAction(r.PostForm)

	s.logger.Debug("form action", "action", action.Kind, "set", action.Set, "sets", len(form.Sets))

	switch action.Kind {
	case submission.ActionAddConstant:
		form.AddConstantSet()
	case submission.ActionAddVariable:
		form.AddVariableSet()
	case submission.ActionAddBarcode:
		if _, err := form.AddBarcode(action.Set); err != nil {
			s.logger.Warn("add barcode rejected", "trigger", action.Trigger, "error", err)
			s.renderForm(w, r, form, http.StatusBadRequest, render.RenderOptions{
				FormErrors: []string{err.Error()},
			})
			return
		}
	case submission.ActionSubmit:
		s.handleSubmit(w, r, form)
		return
	default:
		s.renderForm(w, r, form, http.StatusBadRequest, render.RenderOptions{
			FormErrors: []string{fmt.Sprintf("unknown action %q", action.Trigger)},
		})
		return
	}

	s.renderForm(w, r, form, http.StatusOK, render.RenderOptions{})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request, form model.FormModel) {
	if err := model.Validate(&form); err != nil {
		s.renderErrors(w, r, form, err)
		return
	}

	doc, err := config.FromForm(form, config.Options{Mismatches: s.mismatches})
	if err != nil {
		s.renderErrors(w, r, form, err)
		return
	}
	data, err := config.Marshal(doc)
	if err != nil {
		s.logger.Error("encode barcodes file", "error", err)
		http.Error(w, "could not encode barcodes file", http.StatusInternalServerError)
		return
	}

	s.logger.Info("barcodes file exported", "sets", len(doc.Sets))

	w.Header().Set("Content-Type", yamlContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", defaultDownloadName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, file io.Reader, header *multipart.FileHeader) {
	name := filepath.Base(header.Filename)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
	default:
		s.logger.Warn("upload rejected", "file", name)
		s.renderForm(w, r, submission.Parse(r.PostForm), http.StatusUnprocessableEntity, render.RenderOptions{
			FormErrors: []string{ErrUnsupportedUpload.Error()},
		})
		return
	}

	doc, err := config.Decode(file)
	if err != nil {
		s.logger.Warn("upload not decoded", "file", name, "error", err)
		s.renderForm(w, r, submission.Parse(r.PostForm), http.StatusUnprocessableEntity, render.RenderOptions{
			FormErrors: []string{err.Error()},
		})
		return
	}

	s.logger.Info("barcodes file uploaded", "file", name, "sets", len(doc.Sets))
	s.renderForm(w, r, config.ToForm(doc), http.StatusOK, render.RenderOptions{})
}

func (s *Server) renderErrors(w http.ResponseWriter, r *http.Request, form model.FormModel, errs ...error) {
	mapping := render.MapErrors(form, errs...)
	s.renderForm(w, r, form, http.StatusUnprocessableEntity, render.RenderOptions{
		Errors:     mapping.Fields,
		FormErrors: render.MergeFormErrors(mapping.Form, unprocessableMessage),
	})
}

func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, form model.FormModel, status int, opts render.RenderOptions) {
	renderer, err := s.orch.Renderer(s.renderer)
	if err != nil {
		s.logger.Error("resolve renderer", "renderer", s.renderer, "error", err)
		http.Error(w, "renderer not available", http.StatusInternalServerError)
		return
	}

	output, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Form:          &form,
		Renderer:      renderer.Name(),
		RenderOptions: opts,
	})
	if err != nil {
		s.logger.Error("render form", "error", err)
		http.Error(w, "could not render form", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(output); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

// uploadedFile returns the posted barcodes file, if the user picked one.
func uploadedFile(r *http.Request) (multipart.File, *multipart.FileHeader) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 || strings.TrimSpace(headers[0].Filename) == "" {
		return nil, nil
	}
	file, err := headers[0].Open()
	if err != nil {
		return nil, nil
	}
	return file, headers[0]
}
