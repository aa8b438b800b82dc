package server

import (
	"bytes"
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ai-job-dashboard/internal/charts"
	"github.com/jonathan/ai-job-dashboard/internal/insights"
	"github.com/jonathan/ai-job-dashboard/internal/views"
)

// handleHome renders the headline numbers.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "home.render")
	defer span.End()

	summary := insights.Summarize(s.data.Records())
	span.SetAttributes(attribute.Int("jobs.total", summary.TotalJobs))

	s.render(w, r.WithContext(ctx), http.StatusOK, views.PageHome, views.HomePage{
		Meta:    views.Meta{Title: "AI Job Market Overview", Active: views.PageHome},
		Summary: summary,
	})
}

// handleIndustry renders industry statistics and the top industries chart.
func (s *Server) handleIndustry(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "industry.render")
	defer span.End()

	report := insights.Industries(s.data.Records())
	chart, err := charts.TopIndustries(report.TopIndustries)
	if err != nil {
		s.fail(w, r.WithContext(ctx), err)
		return
	}
	encoded, err := charts.Encode(ctx, chart)
	if err != nil {
		s.fail(w, r.WithContext(ctx), err)
		return
	}

	s.render(w, r.WithContext(ctx), http.StatusOK, views.PageIndustry, views.IndustryPage{
		Meta:   views.Meta{Title: "Industry Insights", Active: views.PageIndustry},
		Report: report,
		Chart:  encoded,
	})
}

// handleSkills renders the most demanded skills.
func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "skills.render")
	defer span.End()

	top := insights.TopSkills(s.data.Records(), insights.TopN)
	encoded, err := charts.Encode(ctx, charts.TopSkills(top))
	if err != nil {
		s.fail(w, r.WithContext(ctx), err)
		return
	}

	s.render(w, r.WithContext(ctx), http.StatusOK, views.PageSkills, views.SkillsPage{
		Meta:   views.Meta{Title: "Skills Analysis", Active: views.PageSkills},
		Chart:  encoded,
		Skills: top,
	})
}

// handleExperience renders both experience charts concurrently, each on
// its own canvas, plus the salary summary table.
func (s *Server) handleExperience(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "experience.render")
	defer span.End()

	records := s.data.Records()
	matrix := insights.EmploymentByExperience(records)
	dists := insights.SalaryByExperience(records)

	page := views.ExperiencePage{
		Meta:          views.Meta{Title: "Experience Insights", Active: views.PageExperience},
		Distributions: dists,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		chart, err := charts.EmploymentByExperience(matrix)
		if err != nil {
			return err
		}
		page.EmploymentChart, err = charts.Encode(gctx, chart)
		return err
	})
	g.Go(func() error {
		chart, err := charts.SalaryByExperience(dists)
		if err != nil {
			return err
		}
		page.SalaryChart, err = charts.Encode(gctx, chart)
		return err
	})
	if err := g.Wait(); err != nil {
		s.fail(w, r.WithContext(ctx), err)
		return
	}

	s.render(w, r.WithContext(ctx), http.StatusOK, views.PageExperience, page)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// render executes a page and writes it with status. Nothing is written
// if the template fails.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.views.Render(&buf, page, data); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("failed to write response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// fail logs err and answers with the generic error page.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	requestID := RequestID(r.Context())
	recordError(r.Context(), err)

	if status >= http.StatusInternalServerError {
		s.logger.Error("request handler failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Error(err))
	}

	var buf bytes.Buffer
	renderErr := s.views.Render(&buf, views.PageError, views.ErrorPage{
		Meta:      views.Meta{Title: http.StatusText(status)},
		Status:    status,
		RequestID: requestID,
	})
	if renderErr != nil {
		s.logger.Error("failed to render error page", zap.Error(renderErr))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func recordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
