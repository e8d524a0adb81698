package ragconfig

// MilvusConfig holds the well-known milvus connection fields.
type MilvusConfig struct {
	URL            string
	DBName         string
	CollectionName string
}

// GenerationConfig holds the well-known generation parameters.
type GenerationConfig struct {
	MaxNewTokens int
	Temperature  float64
	TopP         float64
}

// RetrievalConfig holds the well-known retrieval parameters.
type RetrievalConfig struct {
	TopK                int
	SimilarityThreshold float64
	RerankerThreshold   float64
}

// MilvusConfig decodes the milvus section. Extra keys are ignored; use
// [Store.Milvus] to see them.
func (s *Store) MilvusConfig() (MilvusConfig, error) {
	sec, err := s.Milvus()
	if err != nil {
		return MilvusConfig{}, err
	}

	var c MilvusConfig
	if c.URL, err = sec.String("url"); err != nil {
		return MilvusConfig{}, err
	}
	if c.DBName, err = sec.String("db_name"); err != nil {
		return MilvusConfig{}, err
	}
	if c.CollectionName, err = sec.String("collection_name"); err != nil {
		return MilvusConfig{}, err
	}
	return c, nil
}

// GenerationConfig decodes the generation_params section.
func (s *Store) GenerationConfig() (GenerationConfig, error) {
	sec, err := s.GenerationParams()
	if err != nil {
		return GenerationConfig{}, err
	}

	var c GenerationConfig
	maxTokens, err := sec.Int("max_new_tokens")
	if err != nil {
		return GenerationConfig{}, err
	}
	c.MaxNewTokens = int(maxTokens)
	if c.Temperature, err = sec.Float("temperature"); err != nil {
		return GenerationConfig{}, err
	}
	if c.TopP, err = sec.Float("top_p"); err != nil {
		return GenerationConfig{}, err
	}
	return c, nil
}

// RetrievalConfig decodes the retrieval_params section.
func (s *Store) RetrievalConfig() (RetrievalConfig, error) {
	sec, err := s.RetrievalParams()
	if err != nil {
		return RetrievalConfig{}, err
	}

	var c RetrievalConfig
	topK, err := sec.Int("top_k")
	if err != nil {
		return RetrievalConfig{}, err
	}
	c.TopK = int(topK)
	if c.SimilarityThreshold, err = sec.Float("similarity_threshold"); err != nil {
		return RetrievalConfig{}, err
	}
	if c.RerankerThreshold, err = sec.Float("reranker_threshold"); err != nil {
		return RetrievalConfig{}, err
	}
	return c, nil
}
