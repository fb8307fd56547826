package aboutservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/wayfarer/internal/common"
)

const (
	quickFactsTable = "quick_facts"
	faqsTable       = "faqs"
)

func NewAboutService(db *sql.DB) *AboutService {
	return &AboutService{m: newAboutModel(db)}
}

// GetAboutMe returns the about page content, or common.ErrRecordNotFound if it was never saved.
func (s *AboutService) GetAboutMe(ctx context.Context) (*AboutMe, error) {
	return s.m.getAboutMe(ctx)
}

// SaveAboutMe creates or replaces the about page content.
func (s *AboutService) SaveAboutMe(ctx context.Context, input *AboutMeInput) (*AboutMe, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	a := &AboutMe{
		Title:             input.Title,
		SecondTitle:       input.SecondTitle,
		Description:       input.Description,
		SecondDescription: input.SecondDescription,
		Image:             input.Image,
		SecondImage:       input.SecondImage,
	}

	if err := s.m.saveAboutMe(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *AboutService) GetQuickFacts(ctx context.Context) ([]QuickFact, error) {
	return s.m.getQuickFacts(ctx)
}

func (s *AboutService) GetQuickFactByID(ctx context.Context, id int64) (*QuickFact, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getQuickFactById(ctx, id)
}

func (s *AboutService) CreateQuickFact(ctx context.Context, input *QuickFactInput) (*QuickFact, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	q := &QuickFact{Title: input.Title, Description: input.Description}
	if err := s.m.insertQuickFact(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *AboutService) UpdateQuickFact(ctx context.Context, id int64, input *QuickFactInput) (*QuickFact, error) {
	v := common.NewValidator()
	validateID(v, id)
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	q := &QuickFact{ID: id, Title: input.Title, Description: input.Description}
	if err := s.m.updateQuickFact(ctx, q); err != nil {
		return nil, err
	}

	return q, nil
}

func (s *AboutService) DeleteQuickFact(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteRow(ctx, quickFactsTable, id)
}

func (s *AboutService) GetFAQs(ctx context.Context) ([]FAQ, error) {
	return s.m.getFAQs(ctx)
}

func (s *AboutService) GetFAQByID(ctx context.Context, id int64) (*FAQ, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getFAQById(ctx, id)
}

func (s *AboutService) CreateFAQ(ctx context.Context, input *FAQInput) (*FAQ, error) {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	f := &FAQ{Question: input.Question, Answer: input.Answer}
	if err := s.m.insertFAQ(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *AboutService) UpdateFAQ(ctx context.Context, id int64, input *FAQInput) (*FAQ, error) {
	v := common.NewValidator()
	validateID(v, id)
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	f := &FAQ{ID: id, Question: input.Question, Answer: input.Answer}
	if err := s.m.updateFAQ(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *AboutService) DeleteFAQ(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteRow(ctx, faqsTable, id)
}
