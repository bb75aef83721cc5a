// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package openstack_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/apis/config"
	"github.com/cjjingchen/avocado-cloudtest-sub000/pkg/openstack"
)

var _ = Describe("Openstack", func() {
	testUser := "user"
	testPassword := "pass"
	testAppID := "appID"
	testAppName := "appName"
	testAppSecret := "appSecret"

	Describe("ValidateSecrets", func() {
		It("should fail if both basic auth and app credentials are provided", func() {
			err := openstack.ValidateSecrets(testUser, testPassword, testAppID, testAppName, testAppSecret)
			Expect(err).To(HaveOccurred())
		})
		It("should fail if no password and no app secret are provided", func() {
			err := openstack.ValidateSecrets(testUser, "", testAppID, testAppName, "")
			Expect(err).To(HaveOccurred())
		})
		It("should fail if password but no username are given", func() {
			err := openstack.ValidateSecrets("", testPassword, "", "", "")
			Expect(err).To(MatchError(ContainSubstring("'username' is required")))
		})
		It("should fail if app credentials without id lack the name", func() {
			err := openstack.ValidateSecrets(testUser, "", "", "", testAppSecret)
			Expect(err).To(HaveOccurred())
		})
		It("should be successful if only basic auth credentials are provided", func() {
			err := openstack.ValidateSecrets(testUser, testPassword, "", "", "")
			Expect(err).To(Succeed())
		})
		It("should be successful if only app credentials are provided", func() {
			err := openstack.ValidateSecrets("", "", testAppID, testAppName, testAppSecret)
			Expect(err).To(Succeed())
		})
	})

	Describe("CredentialsFromConfig", func() {
		BeforeEach(func() {
			for _, key := range []string{
				openstack.EnvAuthURL, openstack.EnvDomainName, openstack.EnvUserDomainName, openstack.EnvTenantName,
				openstack.EnvUserName, openstack.EnvPassword, openstack.EnvApplicationCredentialID,
				openstack.EnvApplicationCredentialName, openstack.EnvApplicationCredentialSecret,
				openstack.EnvRegionName, openstack.EnvCACert,
			} {
				GinkgoT().Setenv(key, "")
			}
		})

		It("should take the credentials from the configuration", func() {
			credentials, err := openstack.CredentialsFromConfig(&config.OpenStack{
				AuthURL:    "https://keystone/v3",
				DomainName: "default",
				TenantName: "project",
				Username:   testUser,
				Password:   testPassword,
				Region:     "RegionOne",
				Insecure:   true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(credentials).To(Equal(&openstack.Credentials{
				AuthURL:    "https://keystone/v3",
				DomainName: "default",
				TenantName: "project",
				Username:   testUser,
				Password:   testPassword,
				Region:     "RegionOne",
				Insecure:   true,
			}))
		})

		It("should fall back to the environment", func() {
			caFile := filepath.Join(GinkgoT().TempDir(), "ca.pem")
			Expect(os.WriteFile(caFile, []byte("ca-bundle"), 0600)).To(Succeed())
			GinkgoT().Setenv(openstack.EnvAuthURL, "https://keystone/v3")
			GinkgoT().Setenv(openstack.EnvUserDomainName, "Default")
			GinkgoT().Setenv(openstack.EnvTenantName, "admin")
			GinkgoT().Setenv(openstack.EnvUserName, "admin")
			GinkgoT().Setenv(openstack.EnvPassword, "secret")
			GinkgoT().Setenv(openstack.EnvCACert, caFile)

			credentials, err := openstack.CredentialsFromConfig(&config.OpenStack{TenantName: "demo"})
			Expect(err).NotTo(HaveOccurred())
			Expect(credentials.DomainName).To(Equal("Default"))
			Expect(credentials.TenantName).To(Equal("demo"))
			Expect(credentials.Password).To(Equal("secret"))
			Expect(credentials.CACert).To(Equal("ca-bundle"))
		})

		It("should fail without auth url", func() {
			_, err := openstack.CredentialsFromConfig(nil)
			Expect(err).To(MatchError(ContainSubstring(openstack.EnvAuthURL)))
		})

		It("should fail for incomplete secrets", func() {
			_, err := openstack.CredentialsFromConfig(&config.OpenStack{AuthURL: "https://keystone/v3", DomainName: "default", TenantName: "p", Username: testUser})
			Expect(err).To(MatchError(ContainSubstring("must either specify")))
		})
	})
})
