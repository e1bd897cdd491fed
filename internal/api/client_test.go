package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waiter/internal/models"
	"waiter/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBackend emulates the restaurant REST API for client tests, recording
// what the client sent.
type fakeBackend struct {
	router *gin.Engine

	authHeaders []string
	lastQuery   map[string]string
	lastBody    map[string]any
	lastPath    string
}

func newFakeBackend() *fakeBackend {
	f := &fakeBackend{router: gin.New()}

	record := func(c *gin.Context) {
		f.authHeaders = append(f.authHeaders, c.GetHeader("Authorization"))
		f.lastPath = c.Request.URL.Path
		f.lastQuery = map[string]string{}
		for k, v := range c.Request.URL.Query() {
			f.lastQuery[k] = v[0]
		}
	}

	f.router.POST("/login/autenticar", func(c *gin.Context) {
		record(c)
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.String(http.StatusBadRequest, "bad body")
			return
		}
		f.lastBody = body
		if body["login"] == "maria@example.com" && body["senha"] == "secret" {
			c.JSON(http.StatusOK, gin.H{"token": "issued-token"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	})

	f.router.GET("/login/status", func(c *gin.Context) {
		record(c)
		c.JSON(http.StatusOK, gin.H{"content": []gin.H{
			{"id": 1, "email": "maria@example.com", "funcionario": gin.H{
				"id": 7, "nome": "Maria", "cpf": "123", "cargoFuncionario": gin.H{"cargo": "GARCON"},
			}},
		}})
	})

	f.router.POST("/login", func(c *gin.Context) {
		record(c)
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		f.lastBody = body
		c.JSON(http.StatusCreated, gin.H{"message": "created"})
	})

	f.router.DELETE("/login/:id", func(c *gin.Context) {
		record(c)
		if c.Param("id") == "99" {
			c.JSON(http.StatusConflict, gin.H{"message": "user has open orders"})
			return
		}
		c.Status(http.StatusOK)
	})

	f.router.GET("/produto/status", func(c *gin.Context) {
		record(c)
		c.JSON(http.StatusOK, gin.H{"content": []gin.H{
			{"id": 5, "nome": "Feijoada", "descricao": "completa", "preco": 42.5,
				"linkImagem": "http://img", "tipoProduto": gin.H{"id": 1, "nome": "PRATO"}},
		}})
	})

	f.router.DELETE("/produto/:id", func(c *gin.Context) {
		record(c)
		c.Status(http.StatusOK)
	})

	f.router.GET("/pedido/status", func(c *gin.Context) {
		record(c)
		c.JSON(http.StatusOK, gin.H{"content": []gin.H{
			{"id": 1, "mesa": 4, "itensPedido": []gin.H{
				{"id": 11, "observacao": "no onions",
					"produto": gin.H{"id": 5, "nome": "Feijoada"},
					"controleStatusItemPedidoDtoDetalhar": gin.H{
						"id": 111, "status": gin.H{"id": 1, "status": "A_FAZER", "descricao": "A Fazer"},
					}},
			}},
		}})
	})

	f.router.PUT("/controle-status-item-pedido/:id", func(c *gin.Context) {
		record(c)
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		f.lastBody = body
		c.Status(http.StatusOK)
	})

	return f
}

func newTestClient(t *testing.T, url string) (*Client, *session.Store) {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, store.Save("tok123"))
	client := NewClient(url, store, zerolog.Nop(), Options{})
	return client, store
}

func TestLogin(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	token, err := client.Login(context.Background(), "maria@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
	// login goes out without a bearer header
	assert.Equal(t, "", backend.authHeaders[0])
	assert.Equal(t, "maria@example.com", backend.lastBody["login"])
	assert.Equal(t, "secret", backend.lastBody["senha"])
}

func TestLoginRejected(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	_, err := client.Login(context.Background(), "maria@example.com", "wrong")
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusUnauthorized, serverErr.StatusCode)
	assert.Equal(t, "invalid credentials", serverErr.Message)
}

func TestBearerTokenReadFreshPerCall(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, store := newTestClient(t, srv.URL)

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.Save("rotated"))
	_, err = client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer tok123", "Bearer rotated"}, backend.authHeaders)
}

func TestAuthedCallWithoutSession(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "token"))
	client := NewClient(srv.URL, store, zerolog.Nop(), Options{})

	_, err := client.ListUsers(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Empty(t, backend.authHeaders)
}

func TestListUsers(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Maria", users[0].Employee.Name)
	assert.Equal(t, models.RoleWaiter, users[0].Employee.Role.Role)

	assert.Equal(t, "100", backend.lastQuery["size"])
	assert.Equal(t, "ativo", backend.lastQuery["statusFuncionario"])
}

func TestCreateUser(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	err := client.CreateUser(context.Background(), models.NewUser{
		Email:    "novo@example.com",
		Password: "pw",
		Employee: models.NewEmployee{Name: "Novo", CPF: "321", Role: models.RoleCook},
	})
	require.NoError(t, err)

	assert.Equal(t, "novo@example.com", backend.lastBody["email"])
	emp, ok := backend.lastBody["funcionario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "COZINHEIRO", emp["cargoFuncionario"])
}

func TestDeleteUserFailureCarriesServerMessage(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	require.NoError(t, client.DeleteUser(context.Background(), 1))

	err := client.DeleteUser(context.Background(), 99)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	assert.Equal(t, "user has open orders", serverErr.Message)
}

func TestListProducts(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Feijoada", products[0].Name)
	assert.Equal(t, 42.5, products[0].Price)

	assert.Equal(t, "ATIVO", backend.lastQuery["statusGeral"])
	assert.Equal(t, "50", backend.lastQuery["size"])
	assert.NotContains(t, backend.lastQuery, "tipoProduto")
}

func TestListProductsByCategory(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	_, err := client.ListProductsByCategory(context.Background(), models.CategoryDrink)
	require.NoError(t, err)

	assert.Equal(t, "BEBIDA", backend.lastQuery["tipoProduto"])
	assert.Equal(t, "30", backend.lastQuery["size"])
}

func TestListOrders(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	orders, err := client.ListOrders(context.Background(), models.StatusToDo)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 4, orders[0].Table)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "no onions", orders[0].Items[0].Note)
	assert.Equal(t, 111, orders[0].Items[0].StatusControl.ID)
	assert.Equal(t, models.StatusToDo, orders[0].Items[0].CurrentStatus())

	assert.Equal(t, "A_FAZER", backend.lastQuery["statusProcesso"])
	assert.Equal(t, "50", backend.lastQuery["size"])
}

func TestUpdateItemStatus(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router)
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	err := client.UpdateItemStatus(context.Background(), 111, models.StatusUpdate{
		Description: "moved along",
		Status:      models.StatusDoing,
	})
	require.NoError(t, err)

	assert.Equal(t, "/controle-status-item-pedido/111", backend.lastPath)
	assert.Equal(t, "moved along", backend.lastBody["descricao"])
	assert.Equal(t, "FAZENDO", backend.lastBody["status"])
}

func TestServerErrorWithPlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("something broke"))
	}))
	defer srv.Close()

	client, _ := newTestClient(t, srv.URL)

	_, err := client.ListUsers(context.Background())
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Equal(t, "something broke", serverErr.Message)
}

func TestTransportFailureIsNotAServerError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listening anymore

	client, _ := newTestClient(t, url)

	_, err := client.ListUsers(context.Background())
	require.Error(t, err)
	var serverErr *ServerError
	assert.False(t, errors.As(err, &serverErr))
}
