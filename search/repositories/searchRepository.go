package repositories

import (
	"plot-sales-backend/db/models"
	"plot-sales-backend/search/services"

	"github.com/blevesearch/bleve/v2"
)

const (
	applicationsIndex = "applications"
	buyersIndex       = "buyers"
	propertiesIndex   = "properties"
)

// SearchRepository maps domain records in and out of the search indexes.
// Documents are flattened to the fields the global search box matches on.
type SearchRepository struct {
	indexing services.IndexingServiceInterface
}

func NewSearchRepository(indexing services.IndexingServiceInterface) *SearchRepository {
	return &SearchRepository{indexing: indexing}
}

// BuildIndexes bulk-loads the seeded collections at boot.
func (r *SearchRepository) BuildIndexes(
	properties []models.Property,
	applications []models.Application,
	buyers []models.Buyer,
) error {
	propertyDocs := make(map[string]interface{}, len(properties))
	for _, property := range properties {
		propertyDocs[property.ID.String()] = map[string]interface{}{
			"record_type": "property",
			"name":        property.Name,
			"description": property.Description,
		}
	}
	if err := r.indexing.BulkIndexDocuments(propertiesIndex, propertyDocs); err != nil {
		return err
	}

	applicationDocs := make(map[string]interface{}, len(applications))
	for _, application := range applications {
		applicationDocs[application.ID] = map[string]interface{}{
			"record_type":    "application",
			"applicant_name": application.ApplicantName,
			"property_name":  application.PropertyName,
			"email":          application.Email,
			"status":         string(application.Status),
		}
	}
	if err := r.indexing.BulkIndexDocuments(applicationsIndex, applicationDocs); err != nil {
		return err
	}

	buyerDocs := make(map[string]interface{}, len(buyers))
	for _, buyer := range buyers {
		buyerDocs[buyer.ID] = map[string]interface{}{
			"record_type":        "buyer",
			"name":               buyer.Name,
			"email":              buyer.Email,
			"property_purchased": buyer.PropertyPurchased,
		}
	}
	return r.indexing.BulkIndexDocuments(buyersIndex, buyerDocs)
}

// IndexProperty keeps the index current when a listing is created.
func (r *SearchRepository) IndexProperty(property *models.Property) error {
	return r.indexing.IndexDocument(propertiesIndex, property.ID.String(), map[string]interface{}{
		"record_type": "property",
		"name":        property.Name,
		"description": property.Description,
	})
}

// SearchHit is one global search match with enough context to route to the
// record's view.
type SearchHit struct {
	ID         string                 `json:"id"`
	RecordType string                 `json:"record_type"`
	Score      float64                `json:"score"`
	Fields     map[string]interface{} `json:"fields"`
}

// SearchAll fans the query out across all three indexes and merges the hits.
func (r *SearchRepository) SearchAll(term string, size int) ([]SearchHit, error) {
	hits := make([]SearchHit, 0, size)
	for _, indexName := range []string{propertiesIndex, applicationsIndex, buyersIndex} {
		query := bleve.NewMatchQuery(term)
		result, err := r.indexing.SearchIndex(indexName, query, size)
		if err != nil {
			return nil, err
		}
		for _, hit := range result.Hits {
			recordType := ""
			if rt, ok := hit.Fields["record_type"].(string); ok {
				recordType = rt
			}
			hits = append(hits, SearchHit{
				ID:         hit.ID,
				RecordType: recordType,
				Score:      hit.Score,
				Fields:     hit.Fields,
			})
		}
	}
	return hits, nil
}
