package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/RoyceAzure/lab/backoffice/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

// SetupTest 每個測試用全新的DB
func (suite *ProductRepoTestSuite) SetupTest() {
	suite.db = getTestDbConn(suite.T())
	suite.productRepo = NewProductRepo(NewDbDao(suite.db))
}

func testProduct(code, name string) *model.Product {
	return &model.Product{
		Code:         code,
		Name:         name,
		Unit:         "pcs",
		ImportPrice:  decimal.NewFromInt(50),
		SellingPrice: decimal.NewFromInt(100),
		TaxRate:      decimal.NewFromInt(5),
		IsActive:     true,
	}
}

func (suite *ProductRepoTestSuite) TestCreateProduct() {
	product := testProduct("TEST001", "Test Product")

	err := suite.productRepo.CreateProduct(context.Background(), product)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), product.ProductID)
	require.False(suite.T(), product.CreatedAt.IsZero())
}

func (suite *ProductRepoTestSuite) TestCreateProduct_DuplicateCode() {
	product1 := testProduct("TEST001", "Test Product 1")
	product2 := testProduct("TEST001", "Test Product 2") // 重複的 code

	err1 := suite.productRepo.CreateProduct(context.Background(), product1)
	err2 := suite.productRepo.CreateProduct(context.Background(), product2)

	require.NoError(suite.T(), err1)
	require.Error(suite.T(), err2) // unique index 擋下重複編號
}

func (suite *ProductRepoTestSuite) TestGetProductByCode() {
	product := testProduct("TEST001", "Test Product")
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))

	foundProduct, err := suite.productRepo.GetProductByCode(context.Background(), "TEST001")

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), product.Name, foundProduct.Name)
	require.True(suite.T(), product.SellingPrice.Equal(foundProduct.SellingPrice))
}

func (suite *ProductRepoTestSuite) TestGetProductByCode_NotFound() {
	_, err := suite.productRepo.GetProductByCode(context.Background(), "NOPE")

	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

// 已下架商品還是查得到，歷史訂單要用
func (suite *ProductRepoTestSuite) TestGetProductByCode_Inactive() {
	product := testProduct("TEST001", "Test Product")
	product.IsActive = false
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))

	foundProduct, err := suite.productRepo.GetProductByCode(context.Background(), "TEST001")
	require.NoError(suite.T(), err)
	require.False(suite.T(), foundProduct.IsActive)

	_, err = suite.productRepo.GetActiveProductByCode(context.Background(), "TEST001")
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated() {
	for i := 1; i <= 15; i++ {
		product := testProduct(fmt.Sprintf("TEST%03d", i), fmt.Sprintf("Product %02d", i))
		require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	}
	// 下架商品不計入
	inactive := testProduct("TEST999", "Inactive Product")
	inactive.IsActive = false
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), inactive))

	page2, total, err := suite.productRepo.GetProductsPaginated(context.Background(), 2, 10, ListProductsFilter{})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page2, 5)
	require.EqualValues(suite.T(), 15, total)

	// 超出範圍回空頁，total 不變
	page9, total, err := suite.productRepo.GetProductsPaginated(context.Background(), 9, 10, ListProductsFilter{})
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), page9)
	require.EqualValues(suite.T(), 15, total)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_NameFilter() {
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), testProduct("A001", "Apple Juice")))
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), testProduct("B001", "Banana")))

	products, total, err := suite.productRepo.GetProductsPaginated(context.Background(), 1, 10, ListProductsFilter{Name: "apple"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.EqualValues(suite.T(), 1, total)
	require.Equal(suite.T(), "Apple Juice", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestSearchProducts() {
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), testProduct("A001", "Banana")))
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), testProduct("A002", "Apple Juice")))
	inactive := testProduct("A003", "Apple Pie")
	inactive.IsActive = false
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), inactive))

	// 不分大小寫，只含上架中的，name 升冪
	products, err := suite.productRepo.SearchProducts(context.Background(), "APPLE")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Apple Juice", products[0].Name)

	// 空字串 = 全部符合
	products, err = suite.productRepo.SearchProducts(context.Background(), "")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	require.Equal(suite.T(), "Apple Juice", products[0].Name)
	require.Equal(suite.T(), "Banana", products[1].Name)

	// code 也能搜
	products, err = suite.productRepo.SearchProducts(context.Background(), "a002")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
}

func (suite *ProductRepoTestSuite) TestUpdateProductStatus() {
	product := testProduct("TEST001", "Test Product")
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))

	affected, err := suite.productRepo.UpdateProductStatus(context.Background(), "TEST001", false)
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 1, affected)

	found, err := suite.productRepo.GetProductByCode(context.Background(), "TEST001")
	require.NoError(suite.T(), err)
	require.False(suite.T(), found.IsActive)

	affected, err = suite.productRepo.UpdateProductStatus(context.Background(), "NOPE", false)
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), affected)
}

func (suite *ProductRepoTestSuite) TestDeleteProduct() {
	product := testProduct("TEST001", "Test Product")
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))

	affected, err := suite.productRepo.DeleteProduct(context.Background(), "TEST001")
	require.NoError(suite.T(), err)
	require.EqualValues(suite.T(), 1, affected)

	// 刪除後任何讀取路徑都查不到
	_, err = suite.productRepo.GetProductByCode(context.Background(), "TEST001")
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	products, total, err := suite.productRepo.GetProductsPaginated(context.Background(), 1, 10, ListProductsFilter{})
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), products)
	require.Zero(suite.T(), total)

	found, err := suite.productRepo.SearchProducts(context.Background(), "")
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), found)
}

// 軟刪除保留資料列，同一個編號不能再用
func (suite *ProductRepoTestSuite) TestDeleteProduct_CodeNotReusable() {
	product := testProduct("TEST001", "Test Product")
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))

	_, err := suite.productRepo.DeleteProduct(context.Background(), "TEST001")
	require.NoError(suite.T(), err)

	err = suite.productRepo.CreateProduct(context.Background(), testProduct("TEST001", "Reborn"))
	require.Error(suite.T(), err)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
