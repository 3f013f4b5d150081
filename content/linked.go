package content

import (
	"context"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/studioflow/portfolio-backend/models"
)

// validDocumentID matches the store's document ID rules: up to 36 chars of
// alphanumerics, period, hyphen, underscore, not starting with a special
// char. Anything else in a project's skill list is historical drift or junk
// and is dropped before any lookup is issued.
var validDocumentID = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,35}$`)

// linkedSkillConcurrency bounds the point-lookup fan-out per request.
const linkedSkillConcurrency = 4

// ResolveLinkedSkills resolves a project's referenced skill IDs into full
// skill views via concurrent point lookups. Settle-all semantics: a dangling
// reference (deleted skill) or an individual lookup failure is logged and
// skipped, never voiding the rest of the batch. Results keep input order.
func (s *SkillService) ResolveLinkedSkills(ctx context.Context, skillIDs []string) []SkillView {
	ids := make([]string, 0, len(skillIDs))
	for _, id := range skillIDs {
		if validDocumentID.MatchString(id) {
			ids = append(ids, id)
		} else if id != "" {
			s.logger.Debug().Str("skillId", id).Msg("Dropping malformed skill reference")
		}
	}
	if len(ids) == 0 {
		return []SkillView{}
	}

	// Each worker writes only its own slot, so no lock is needed.
	resolved := make([]*SkillView, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(linkedSkillConcurrency)

	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			doc, err := s.store.GetDocument(groupCtx, s.collection, id)
			if err != nil {
				s.logger.Warn().Err(err).Str("skillId", id).Msg("Failed to resolve linked skill")
				return nil
			}
			skill, err := models.SkillFromDocument(doc)
			if err != nil {
				s.logger.Warn().Err(err).Str("skillId", id).Msg("Malformed linked skill document")
				return nil
			}
			view := s.resolveView(skill)
			resolved[i] = &view
			return nil
		})
	}

	// Workers never return errors; Wait only serves as the join point.
	_ = group.Wait()

	views := make([]SkillView, 0, len(ids))
	for _, view := range resolved {
		if view != nil {
			views = append(views, *view)
		}
	}
	return views
}
