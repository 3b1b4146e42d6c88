package application

// CartService 聚合命令与查询服务的门面
type CartService struct {
	*CartCommandService
	*CartQueryService
}

// NewCartService 创建购物车应用服务
func NewCartService(cmd *CartCommandService, query *CartQueryService) *CartService {
	return &CartService{CartCommandService: cmd, CartQueryService: query}
}
