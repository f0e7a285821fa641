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

// sjResponse is one page of GET /2.0/vacancies/
type sjResponse struct {
	Objects []sjVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    bool        `json:"more"`
}

// sjVacancy represents a job posting from SuperJob. Payment bounds are
// 0 when not specified.
type sjVacancy struct {
	ID          int    `json:"id"`
	Profession  string `json:"profession"`
	FirmName    string `json:"firm_name"`
	Link        string `json:"link"`
	Currency    string `json:"currency"`
	PaymentFrom *int   `json:"payment_from"`
	PaymentTo   *int   `json:"payment_to"`
}

// SuperJob fetches vacancies from api.superjob.ru
type SuperJob struct {
	cfg        config.SuperJobConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewSuperJob creates a SuperJob source.
func NewSuperJob(cfg config.SuperJobConfig, httpClient *http.Client, log *logger.Logger) *SuperJob {
	if log == nil {
		log = logger.Nop()
	}
	return &SuperJob{cfg: cfg, httpClient: httpClient, log: log}
}

// Name returns the source name.
func (s *SuperJob) Name() string {
	return "SuperJob"
}

// FetchAll requests pages until the API reports no more results.
func (s *SuperJob) FetchAll(ctx context.Context, language string) ([]models.Posting, error) {
	var postings []models.Posting

	headers := http.Header{}
	headers.Set("X-Api-App-Id", s.cfg.APIKey)

	more := true
	for page := 0; more; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		apiURL, err := s.buildURL(language, page)
		if err != nil {
			return nil, fmt.Errorf("%s: build url: %w", s.Name(), err)
		}

		var resp sjResponse
		if err := client.GetJSON(ctx, s.httpClient, apiURL, headers, &resp); err != nil {
			return nil, fmt.Errorf("%s: %q page %d: %w", s.Name(), language, page, err)
		}
		more = resp.More

		s.log.Debug("fetched page", s.log.Args(
			"source", s.Name(),
			"language", language,
			"page", page,
			"more", more,
			"items", len(resp.Objects),
		))

		for _, item := range resp.Objects {
			postings = append(postings, item.toPosting(s.Name()))
		}
	}

	return postings, nil
}

func (s *SuperJob) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("keyword", searchText(s.cfg.SearchPhrase, language, s.cfg.Town))
	query.Set("count", strconv.Itoa(clampPageSize(s.cfg.Count)))
	query.Set("page", strconv.Itoa(page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

func (v sjVacancy) toPosting(source string) models.Posting {
	return models.Posting{
		ID:       strconv.Itoa(v.ID),
		Title:    v.Profession,
		Employer: v.FirmName,
		URL:      v.Link,
		Currency: v.Currency,
		Salary: models.Bounds{
			From: specified(v.PaymentFrom),
			To:   specified(v.PaymentTo),
		},
		Source: source,
	}
}

// specified maps SuperJob's "0 = not specified" convention to nil.
func specified(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
