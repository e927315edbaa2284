package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kasir/pkg/api"
)

// CatalogServiceName is the fully-qualified name of the CatalogService service.
const CatalogServiceName = "kasir.v1.CatalogService"

const (
	CatalogServiceBrowseCatalogProcedure  = "/kasir.v1.CatalogService/BrowseCatalog"
	CatalogServiceListCategoriesProcedure = "/kasir.v1.CatalogService/ListCategories"
	CatalogServiceCreateCategoryProcedure = "/kasir.v1.CatalogService/CreateCategory"
	CatalogServiceCreateProductProcedure  = "/kasir.v1.CatalogService/CreateProduct"
	CatalogServiceUpdateProductProcedure  = "/kasir.v1.CatalogService/UpdateProduct"
	CatalogServiceDeleteProductProcedure  = "/kasir.v1.CatalogService/DeleteProduct"
)

// CatalogServiceClient is a client for the kasir.v1.CatalogService service.
type CatalogServiceClient interface {
	BrowseCatalog(context.Context, *connect.Request[api.BrowseCatalogRequest]) (*connect.Response[api.BrowseCatalogResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
}

// NewCatalogServiceClient constructs a client for the kasir.v1.CatalogService service.
func NewCatalogServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opt := clientOptions(opts)
	return &catalogServiceClient{
		browseCatalog:  connect.NewClient[api.BrowseCatalogRequest, api.BrowseCatalogResponse](httpClient, baseURL+CatalogServiceBrowseCatalogProcedure, opt),
		listCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](httpClient, baseURL+CatalogServiceListCategoriesProcedure, opt),
		createCategory: connect.NewClient[api.CreateCategoryRequest, api.CreateCategoryResponse](httpClient, baseURL+CatalogServiceCreateCategoryProcedure, opt),
		createProduct:  connect.NewClient[api.CreateProductRequest, api.CreateProductResponse](httpClient, baseURL+CatalogServiceCreateProductProcedure, opt),
		updateProduct:  connect.NewClient[api.UpdateProductRequest, api.UpdateProductResponse](httpClient, baseURL+CatalogServiceUpdateProductProcedure, opt),
		deleteProduct:  connect.NewClient[api.DeleteProductRequest, api.DeleteProductResponse](httpClient, baseURL+CatalogServiceDeleteProductProcedure, opt),
	}
}

type catalogServiceClient struct {
	browseCatalog  *connect.Client[api.BrowseCatalogRequest, api.BrowseCatalogResponse]
	listCategories *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	createCategory *connect.Client[api.CreateCategoryRequest, api.CreateCategoryResponse]
	createProduct  *connect.Client[api.CreateProductRequest, api.CreateProductResponse]
	updateProduct  *connect.Client[api.UpdateProductRequest, api.UpdateProductResponse]
	deleteProduct  *connect.Client[api.DeleteProductRequest, api.DeleteProductResponse]
}

func (c *catalogServiceClient) BrowseCatalog(ctx context.Context, req *connect.Request[api.BrowseCatalogRequest]) (*connect.Response[api.BrowseCatalogResponse], error) {
	return c.browseCatalog.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *catalogServiceClient) CreateCategory(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

func (c *catalogServiceClient) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return c.createProduct.CallUnary(ctx, req)
}

func (c *catalogServiceClient) UpdateProduct(ctx context.Context, req *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	return c.updateProduct.CallUnary(ctx, req)
}

func (c *catalogServiceClient) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return c.deleteProduct.CallUnary(ctx, req)
}

// CatalogServiceHandler is implemented by the kasir.v1.CatalogService server.
type CatalogServiceHandler interface {
	BrowseCatalog(context.Context, *connect.Request[api.BrowseCatalogRequest]) (*connect.Response[api.BrowseCatalogResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error)
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	browseCatalogHandler := connect.NewUnaryHandler(CatalogServiceBrowseCatalogProcedure, svc.BrowseCatalog, opt)
	listCategoriesHandler := connect.NewUnaryHandler(CatalogServiceListCategoriesProcedure, svc.ListCategories, opt)
	createCategoryHandler := connect.NewUnaryHandler(CatalogServiceCreateCategoryProcedure, svc.CreateCategory, opt)
	createProductHandler := connect.NewUnaryHandler(CatalogServiceCreateProductProcedure, svc.CreateProduct, opt)
	updateProductHandler := connect.NewUnaryHandler(CatalogServiceUpdateProductProcedure, svc.UpdateProduct, opt)
	deleteProductHandler := connect.NewUnaryHandler(CatalogServiceDeleteProductProcedure, svc.DeleteProduct, opt)
	return "/" + CatalogServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceBrowseCatalogProcedure:
			browseCatalogHandler.ServeHTTP(w, r)
		case CatalogServiceListCategoriesProcedure:
			listCategoriesHandler.ServeHTTP(w, r)
		case CatalogServiceCreateCategoryProcedure:
			createCategoryHandler.ServeHTTP(w, r)
		case CatalogServiceCreateProductProcedure:
			createProductHandler.ServeHTTP(w, r)
		case CatalogServiceUpdateProductProcedure:
			updateProductHandler.ServeHTTP(w, r)
		case CatalogServiceDeleteProductProcedure:
			deleteProductHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) BrowseCatalog(context.Context, *connect.Request[api.BrowseCatalogRequest]) (*connect.Response[api.BrowseCatalogResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.BrowseCatalog is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.ListCategories is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateCategory(context.Context, *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CreateCategoryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.CreateCategory is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.CreateProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) UpdateProduct(context.Context, *connect.Request[api.UpdateProductRequest]) (*connect.Response[api.UpdateProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.UpdateProduct is not implemented"))
}

func (UnimplementedCatalogServiceHandler) DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("kasir.v1.CatalogService.DeleteProduct is not implemented"))
}
