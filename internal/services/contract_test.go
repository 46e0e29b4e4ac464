package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/services"
	"github.com/ClemRoy/epicEvents/internal/workflow"
)

func TestContractSign_FlipsPotentialClient(t *testing.T) {
	conn := testDB(t)
	sales := createCommercial(t, conn, "sales@example.com")
	client := createClient(t, conn, sales.ID, "jane@acme.com")
	contract := createContract(t, conn, client.ID, sales.ID, models.ContractStatusNegotiation)

	svc := services.NewContractService(conn)
	signed, updatedClient, err := svc.Sign(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Equal(t, models.ContractStatusSigned, signed.Status)
	require.Equal(t, models.ClientStatusCustomer, updatedClient.Status)

	// Both writes landed.
	var storedContract models.Contract
	require.NoError(t, conn.First(&storedContract, contract.ID).Error)
	require.Equal(t, models.ContractStatusSigned, storedContract.Status)
	var storedClient models.Client
	require.NoError(t, conn.First(&storedClient, client.ID).Error)
	require.Equal(t, models.ClientStatusCustomer, storedClient.Status)
}

func TestContractSign_IdempotentOnCustomer(t *testing.T) {
	conn := testDB(t)
	sales := createCommercial(t, conn, "sales@example.com")
	client := createClient(t, conn, sales.ID, "jane@acme.com")
	require.NoError(t, conn.Model(client).Update("status", models.ClientStatusCustomer).Error)
	contract := createContract(t, conn, client.ID, sales.ID, models.ContractStatusNegotiation)

	svc := services.NewContractService(conn)
	_, updatedClient, err := svc.Sign(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Equal(t, models.ClientStatusCustomer, updatedClient.Status)
}

func TestContractSign_AlreadySignedIsNoOp(t *testing.T) {
	conn := testDB(t)
	sales := createCommercial(t, conn, "sales@example.com")
	client := createClient(t, conn, sales.ID, "jane@acme.com")
	contract := createContract(t, conn, client.ID, sales.ID, models.ContractStatusSigned)

	svc := services.NewContractService(conn)
	signed, _, err := svc.Sign(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Equal(t, models.ContractStatusSigned, signed.Status)
}

func TestContractSign_MissingContract(t *testing.T) {
	conn := testDB(t)
	svc := services.NewContractService(conn)

	_, _, err := svc.Sign(context.Background(), 9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContractSign_SecondContractLeavesCustomer(t *testing.T) {
	conn := testDB(t)
	sales := createCommercial(t, conn, "sales@example.com")
	client := createClient(t, conn, sales.ID, "jane@acme.com")
	first := createContract(t, conn, client.ID, sales.ID, models.ContractStatusNegotiation)
	second := createContract(t, conn, client.ID, sales.ID, models.ContractStatusNegotiation)

	svc := services.NewContractService(conn)
	_, _, err := svc.Sign(context.Background(), first.ID)
	require.NoError(t, err)
	_, updatedClient, err := svc.Sign(context.Background(), second.ID)
	require.NoError(t, err)
	require.Equal(t, models.ClientStatusCustomer, updatedClient.Status)
}

func TestWorkflowRejectsUnsign(t *testing.T) {
	// The service never offers an unsign path; the transition itself is the
	// guard shared by any caller.
	err := workflow.ValidateContractTransition(models.ContractStatusSigned, models.ContractStatusNegotiation)
	require.ErrorIs(t, err, workflow.ErrInvalidTransition)
}
