package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/logger"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// hhResponse is one page of GET /vacancies
type hhResponse struct {
	Items   []hhVacancy `json:"items"`
	Found   int         `json:"found"`
	Pages   int         `json:"pages"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// hhVacancy represents a job posting from HeadHunter
type hhVacancy struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AlternateURL string    `json:"alternate_url"`
	Salary       *hhSalary `json:"salary"`
	Employer     struct {
		Name string `json:"name"`
	} `json:"employer"`
}

// hhSalary bounds are null when the employer left them out
type hhSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// HeadHunter fetches vacancies from api.hh.ru
type HeadHunter struct {
	cfg        config.HeadHunterConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewHeadHunter creates a HeadHunter source.
func NewHeadHunter(cfg config.HeadHunterConfig, httpClient *http.Client, log *logger.Logger) *HeadHunter {
	if log == nil {
		log = logger.Nop()
	}
	return &HeadHunter{cfg: cfg, httpClient: httpClient, log: log}
}

// Name returns the source name.
func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

// FetchAll walks every result page for language. The page count is
// re-read from each response and the loop runs while page < pages.
func (h *HeadHunter) FetchAll(ctx context.Context, language string) ([]models.Posting, error) {
	var postings []models.Posting

	pages := 1
	for page := 0; page < pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		apiURL, err := h.buildURL(language, page)
		if err != nil {
			return nil, fmt.Errorf("%s: build url: %w", h.Name(), err)
		}

		var resp hhResponse
		if err := client.GetJSON(ctx, h.httpClient, apiURL, nil, &resp); err != nil {
			return nil, fmt.Errorf("%s: %q page %d: %w", h.Name(), language, page, err)
		}
		pages = resp.Pages

		h.log.Debug("fetched page", h.log.Args(
			"source", h.Name(),
			"language", language,
			"page", page,
			"pages", pages,
			"items", len(resp.Items),
		))

		for _, item := range resp.Items {
			postings = append(postings, item.toPosting(h.Name()))
		}
	}

	return postings, nil
}

func (h *HeadHunter) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(h.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("text", searchText(h.cfg.SearchPhrase, language))
	if h.cfg.Area > 0 {
		query.Set("area", strconv.Itoa(h.cfg.Area))
	}
	if h.cfg.PeriodDays > 0 {
		query.Set("period", strconv.Itoa(h.cfg.PeriodDays))
	}
	query.Set("only_with_salary", "true")
	if h.cfg.Currency != "" {
		query.Set("currency", h.cfg.Currency)
	}
	query.Set("per_page", strconv.Itoa(clampPageSize(h.cfg.PerPage)))
	query.Set("page", strconv.Itoa(page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (v hhVacancy) toPosting(source string) models.Posting {
	p := models.Posting{
		ID:       v.ID,
		Title:    v.Name,
		Employer: v.Employer.Name,
		URL:      v.AlternateURL,
		Source:   source,
	}
	if v.Salary != nil {
		p.Currency = v.Salary.Currency
		p.Salary = models.Bounds{From: v.Salary.From, To: v.Salary.To}
	}
	return p
}
