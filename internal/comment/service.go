package comment

// FeedLimit caps the comment feed at the 20 most recent entries.
const FeedLimit = 20

type Service interface {
	Create(in CreateReq) (*Comment, error)
	Latest() ([]Comment, error)
	GetByID(id uint64) (*Comment, error)
	Like(id uint64) (*Comment, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(in CreateReq) (*Comment, error) {
	c := &Comment{Message: in.Message}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Latest() ([]Comment, error)          { return s.repo.Latest(FeedLimit) }
func (s *service) GetByID(id uint64) (*Comment, error) { return s.repo.GetByID(id) }
func (s *service) Like(id uint64) (*Comment, error)    { return s.repo.Like(id) }
